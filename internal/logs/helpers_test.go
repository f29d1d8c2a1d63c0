// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package logs_test

import (
	"bytes"
	"io"
	"strings"

	"github.com/taibuivan/folio/internal/logs"
)

func indexOf(s, sub string) int {
	return strings.Index(s, sub)
}

func bytesReader(raw []byte) io.Reader {
	return bytes.NewReader(raw)
}

func recordsOf(entries []logs.Entry) []logs.Record {
	out := make([]logs.Record, len(entries))
	for i, entry := range entries {
		out[i] = entry.Record
	}
	return out
}
