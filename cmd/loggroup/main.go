// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command loggroup regroups a flat log file (logsData.json) into the
// year/country/city layout served as logsGrouped.json.
//
// Usage:
//
//	loggroup -in public/assets/logsData.json -out public/assets/logsGrouped.json
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/taibuivan/folio/internal/logs"
	"github.com/taibuivan/folio/pkg/slice"
)

func main() {
	in := flag.String("in", "./public/assets/logsData.json", "flat log file (path or http(s) URL)")
	out := flag.String("out", "./public/assets/logsGrouped.json", "grouped output file")
	timeout := flag.Duration("timeout", 30*time.Second, "read timeout")
	flag.Parse()

	log := slog.New(slog.NewJSONHandler(os.Stderr, nil)).With(slog.String("app", "loggroup"))

	context, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	entries, err := logs.NewSource(*in, *timeout).Load(context)
	if err != nil {
		log.Error("log_read_failed", slog.String("in", *in), slog.Any("error", err))
		os.Exit(1)
	}

	records := slice.Map(entries, func(entry logs.Entry) logs.Record { return entry.Record })
	grouped := logs.Group(records)

	raw, err := json.Marshal(grouped)
	if err != nil {
		log.Error("log_encode_failed", slog.Any("error", err))
		os.Exit(1)
	}

	var indented bytes.Buffer
	if err := json.Indent(&indented, raw, "", "  "); err != nil {
		log.Error("log_encode_failed", slog.Any("error", err))
		os.Exit(1)
	}
	indented.WriteByte('\n')

	if err := os.WriteFile(*out, indented.Bytes(), 0o644); err != nil {
		log.Error("log_write_failed", slog.String("out", *out), slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("logs_grouped",
		slog.Int("read", len(records)),
		slog.Int("grouped", grouped.Len()),
		slog.Int("skipped", len(records)-grouped.Len()),
		slog.String("out", *out),
	)
}
