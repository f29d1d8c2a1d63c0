// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package logs

import (
	"bytes"
	"encoding/json"
)

// UnknownCity files records that have no city.
const UnknownCity = "Unknown"

// Grouped is the year → country → city layout of the grouped log file.
// Keys keep first-seen order when encoded.
type Grouped struct {
	Years []YearGroup
}

type YearGroup struct {
	Year      string
	Countries []CountryGroup
}

type CountryGroup struct {
	Country string
	Cities  []CityGroup
}

type CityGroup struct {
	City    string
	Records []Record
}

// Group files records by year, country and city. Records without a date or
// a country are skipped; a missing city becomes [UnknownCity].
func Group(records []Record) *Grouped {
	grouped := &Grouped{Years: []YearGroup{}}

	for _, record := range records {
		if record.Date == nil || *record.Date == "" || record.Country == "" {
			continue
		}

		city := record.City
		if city == "" {
			city = UnknownCity
		}

		year := grouped.year(record.Year())
		country := year.country(record.Country)
		target := country.city(city)
		target.Records = append(target.Records, record)
	}

	return grouped
}

// Len counts the grouped records.
func (g *Grouped) Len() int {
	total := 0
	for _, year := range g.Years {
		for _, country := range year.Countries {
			for _, city := range country.Cities {
				total += len(city.Records)
			}
		}
	}
	return total
}

func (g *Grouped) year(name string) *YearGroup {
	for index := range g.Years {
		if g.Years[index].Year == name {
			return &g.Years[index]
		}
	}
	g.Years = append(g.Years, YearGroup{Year: name})
	return &g.Years[len(g.Years)-1]
}

func (y *YearGroup) country(name string) *CountryGroup {
	for index := range y.Countries {
		if y.Countries[index].Country == name {
			return &y.Countries[index]
		}
	}
	y.Countries = append(y.Countries, CountryGroup{Country: name})
	return &y.Countries[len(y.Countries)-1]
}

func (c *CountryGroup) city(name string) *CityGroup {
	for index := range c.Cities {
		if c.Cities[index].City == name {
			return &c.Cities[index]
		}
	}
	c.Cities = append(c.Cities, CityGroup{City: name})
	return &c.Cities[len(c.Cities)-1]
}

// MarshalJSON writes nested objects in insertion order.
func (g *Grouped) MarshalJSON() ([]byte, error) {
	var buffer bytes.Buffer

	buffer.WriteByte('{')
	for yearIndex, year := range g.Years {
		if yearIndex > 0 {
			buffer.WriteByte(',')
		}
		if err := writeKey(&buffer, year.Year); err != nil {
			return nil, err
		}

		buffer.WriteByte('{')
		for countryIndex, country := range year.Countries {
			if countryIndex > 0 {
				buffer.WriteByte(',')
			}
			if err := writeKey(&buffer, country.Country); err != nil {
				return nil, err
			}

			buffer.WriteByte('{')
			for cityIndex, city := range country.Cities {
				if cityIndex > 0 {
					buffer.WriteByte(',')
				}
				if err := writeKey(&buffer, city.City); err != nil {
					return nil, err
				}
				records, err := json.Marshal(city.Records)
				if err != nil {
					return nil, err
				}
				buffer.Write(records)
			}
			buffer.WriteByte('}')
		}
		buffer.WriteByte('}')
	}
	buffer.WriteByte('}')

	return buffer.Bytes(), nil
}

func writeKey(buffer *bytes.Buffer, key string) error {
	encoded, err := json.Marshal(key)
	if err != nil {
		return err
	}
	buffer.Write(encoded)
	buffer.WriteByte(':')
	return nil
}
