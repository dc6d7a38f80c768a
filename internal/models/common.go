package models

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// ============================================
// Гибкие JSON-типы
// ============================================
//
// Бэкенд отдаёт одни и те же поля то числом, то строкой (Postgres numeric,
// bigint id, пустые строки вместо null). Типы ниже принимают оба варианта.

var jsonNull = []byte("null")

// ID - идентификатор записи: uuid-строка или число.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, jsonNull) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	*id = ID(string(data))
	return nil
}

func (id ID) String() string { return string(id) }

// FlexInt - целое число, которое может прийти строкой ("12").
// Нечисловые значения превращаются в 0, как Number(x) || 0 на клиенте.
type FlexInt int64

func (n *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, jsonNull) {
		*n = 0
		return nil
	}
	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
	}
	if raw == "" {
		*n = 0
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		*n = 0
		return nil
	}
	*n = FlexInt(int64(f))
	return nil
}

func (n FlexInt) Int() int { return int(n) }

// FlexString - строковое поле, которое бэкенд иногда отдаёт числом (wage).
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, jsonNull) {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = FlexString(v)
		return nil
	}
	*s = FlexString(string(data))
	return nil
}

func (s FlexString) String() string { return string(s) }

// Coordinate - широта или долгота. Valid == false для null, пустой строки
// и нечисловых значений.
type Coordinate struct {
	Value float64
	Valid bool
}

// NewCoordinate создаёт валидную координату.
func NewCoordinate(v float64) Coordinate {
	return Coordinate{Value: v, Valid: true}
}

// ParseCoordinate разбирает координату из строки формы.
func ParseCoordinate(raw string) Coordinate {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Coordinate{}
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return Coordinate{}
	}
	return NewCoordinate(f)
}

func (c *Coordinate) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, jsonNull) {
		*c = Coordinate{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = ParseCoordinate(s)
		return nil
	}
	*c = ParseCoordinate(string(data))
	return nil
}

func (c Coordinate) MarshalJSON() ([]byte, error) {
	if !c.Valid {
		return jsonNull, nil
	}
	return []byte(strconv.FormatFloat(c.Value, 'f', -1, 64)), nil
}

func (c Coordinate) String() string {
	if !c.Valid {
		return ""
	}
	return strconv.FormatFloat(c.Value, 'f', -1, 64)
}

// ListResponse - стандартная обёртка списков бэкенда {"items": [...]}.
type ListResponse[T any] struct {
	Items []T `json:"items"`
}

// FlexFloat - дробное число, которое может прийти строкой (Postgres numeric).
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	var c Coordinate
	if err := c.UnmarshalJSON(data); err != nil {
		return err
	}
	*f = FlexFloat(c.Value)
	return nil
}

// NullString сериализуется в null, если строка пустая (`value || null`).
type NullString string

func (s NullString) MarshalJSON() ([]byte, error) {
	if s == "" {
		return jsonNull, nil
	}
	return json.Marshal(string(s))
}

func (s *NullString) UnmarshalJSON(data []byte) error {
	var v FlexString
	if err := v.UnmarshalJSON(data); err != nil {
		return err
	}
	*s = NullString(v)
	return nil
}

// NullInt сериализуется в null, если значение не задано.
type NullInt struct {
	Value int
	Valid bool
}

func (n NullInt) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return jsonNull, nil
	}
	return []byte(strconv.Itoa(n.Value)), nil
}

// ParseNullInt разбирает число из формы; пустая строка и мусор дают null.
func ParseNullInt(raw string) NullInt {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return NullInt{}
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return NullInt{}
	}
	return NullInt{Value: int(f), Valid: true}
}
