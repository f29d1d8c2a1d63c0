// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package logs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrMalformed is returned when the log file matches neither accepted shape.
var ErrMalformed = errors.New("logs: malformed log file")

// Decode reads a log file and flattens it in file order.
//
// Accepted shapes:
//
//	[ record, ... ]
//	{ year: { country: [ record, ... ] } }
//	{ year: { country: { city: [ record, ... ] } } }
//
// A country value of null is treated as empty.
func Decode(reader io.Reader) ([]Entry, error) {
	decoder := json.NewDecoder(reader)

	token, err := decoder.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	var entries []Entry
	switch token {
	case json.Delim('['):
		entries, err = decodeRecords(decoder, "", "", "")
	case json.Delim('{'):
		entries, err = decodeYears(decoder)
	default:
		return nil, fmt.Errorf("%w: top level must be an array or an object", ErrMalformed)
	}
	if err != nil {
		return nil, err
	}

	if entries == nil {
		entries = []Entry{}
	}
	return entries, nil
}

func decodeYears(decoder *json.Decoder) ([]Entry, error) {
	var entries []Entry

	for decoder.More() {
		year, err := decodeKey(decoder)
		if err != nil {
			return nil, err
		}
		if err := expectDelim(decoder, '{', "year "+year); err != nil {
			return nil, err
		}

		for decoder.More() {
			country, err := decodeKey(decoder)
			if err != nil {
				return nil, err
			}
			countryEntries, err := decodeCountry(decoder, year, country)
			if err != nil {
				return nil, err
			}
			entries = append(entries, countryEntries...)
		}

		if err := expectDelim(decoder, '}', "year "+year); err != nil {
			return nil, err
		}
	}

	return entries, expectDelim(decoder, '}', "document")
}

// decodeCountry reads either a record array or a city map.
func decodeCountry(decoder *json.Decoder, year, country string) ([]Entry, error) {
	token, err := decoder.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %s/%s: %v", ErrMalformed, year, country, err)
	}

	switch token {
	case nil:
		return nil, nil
	case json.Delim('['):
		return decodeRecords(decoder, year, country, "")
	case json.Delim('{'):
	default:
		return nil, fmt.Errorf("%w: %s/%s must be an array or an object", ErrMalformed, year, country)
	}

	var entries []Entry
	for decoder.More() {
		city, err := decodeKey(decoder)
		if err != nil {
			return nil, err
		}
		if err := expectDelim(decoder, '[', year+"/"+country+"/"+city); err != nil {
			return nil, err
		}
		cityEntries, err := decodeRecords(decoder, year, country, city)
		if err != nil {
			return nil, err
		}
		entries = append(entries, cityEntries...)
	}

	return entries, expectDelim(decoder, '}', year+"/"+country)
}

// decodeRecords reads array elements up to and including the closing bracket.
// Empty group keys are filled from the record.
func decodeRecords(decoder *json.Decoder, year, country, city string) ([]Entry, error) {
	var entries []Entry

	for decoder.More() {
		var record Record
		if err := decoder.Decode(&record); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrMalformed, len(entries), err)
		}

		entry := Entry{Record: record, Year: year, GroupCountry: country, GroupCity: city}
		if entry.Year == "" {
			entry.Year = record.Year()
		}
		if entry.GroupCountry == "" {
			entry.GroupCountry = record.Country
		}
		if entry.Country == "" {
			entry.Country = country
		}
		if entry.City == "" {
			entry.City = city
		}
		entries = append(entries, entry)
	}

	if err := expectDelim(decoder, ']', "records"); err != nil {
		return nil, err
	}
	return entries, nil
}

func decodeKey(decoder *json.Decoder) (string, error) {
	token, err := decoder.Token()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	key, ok := token.(string)
	if !ok {
		return "", fmt.Errorf("%w: expected object key, got %v", ErrMalformed, token)
	}
	return key, nil
}

func expectDelim(decoder *json.Decoder, want json.Delim, where string) error {
	token, err := decoder.Token()
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformed, where, err)
	}
	if token != want {
		return fmt.Errorf("%w: %s: expected %q, got %v", ErrMalformed, where, want, token)
	}
	return nil
}
