package handler

import (
	"errors"
	"strconv"

	"github.com/tronicboy1/sql-paginatorr/internal/service"
)

// fieldParser collects parse failures for unsigned request fields so a
// handler can report all of them at once.
type fieldParser struct {
	errs []service.FieldError
}

func (p *fieldParser) required(field, raw string) uint {
	if raw == "" {
		p.errs = append(p.errs, service.FieldError{Field: field, Message: "is required"})
		return 0
	}
	return p.parse(field, raw)
}

// optional returns nil when the field is absent.
func (p *fieldParser) optional(field, raw string) *uint {
	if raw == "" {
		return nil
	}
	v := p.parse(field, raw)
	return &v
}

func (p *fieldParser) parse(field, raw string) uint {
	v, err := strconv.ParseUint(raw, 10, 0)
	if err != nil {
		msg := "must be a non-negative integer"
		if errors.Is(err, strconv.ErrRange) {
			msg = "is out of range"
		}
		p.errs = append(p.errs, service.FieldError{Field: field, Message: msg})
		return 0
	}
	return uint(v)
}

func (p *fieldParser) err() error { return service.NewInvalidInput(p.errs) }
