// Package sorting parses the compact sort specification accepted by the list endpoint, e.g.
// "-type,name", into an ordered list of (field, direction) keys.
package sorting

import (
	"strings"

	"gorm.io/gorm/clause"
)

type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

type Order struct {
	Field     string
	Direction Direction
}

// Ordering is a list of sort keys, primary key first. A field appears at most once.
type Ordering []Order

// aliases rewrite public field names to attribute names before validation.
var aliases = map[string]string{
	"type": "brewery_type",
}

type Parser struct {
	attributes map[string]struct{}
}

func NewParser(attributes []string) *Parser {
	known := make(map[string]struct{}, len(attributes))
	for _, attribute := range attributes {
		known[attribute] = struct{}{}
	}

	return &Parser{attributes: known}
}

// Parse reads a comma separated list of [+|-]field tokens. Unknown fields are dropped. When a
// field repeats it keeps the priority of its first occurrence and the direction of its last one.
func (p *Parser) Parse(value string) Ordering {
	if len(strings.TrimSpace(value)) == 0 {
		return nil
	}

	var ordering Ordering

	positions := make(map[string]int)

	for _, token := range strings.Split(value, ",") {
		field, direction := parseToken(strings.TrimSpace(token))

		if alias, found := aliases[field]; found {
			field = alias
		}

		if _, known := p.attributes[field]; !known {
			continue
		}

		if position, seen := positions[field]; seen {
			ordering[position].Direction = direction

			continue
		}

		positions[field] = len(ordering)
		ordering = append(ordering, Order{Field: field, Direction: direction})
	}

	return ordering
}

func parseToken(token string) (string, Direction) {
	switch {
	case strings.HasPrefix(token, "-"):
		return token[1:], Descending
	case strings.HasPrefix(token, "+"):
		return token[1:], Ascending
	default:
		return token, Ascending
	}
}

func (o Ordering) IsEmpty() bool {
	return len(o) == 0
}

// OrderBy converts the ordering into a gorm ORDER BY clause.
func (o Ordering) OrderBy() clause.OrderBy {
	columns := make([]clause.OrderByColumn, 0, len(o))

	for _, order := range o {
		columns = append(columns, clause.OrderByColumn{
			Column: clause.Column{Table: clause.CurrentTable, Name: order.Field},
			Desc:   order.Direction == Descending,
		})
	}

	return clause.OrderBy{Columns: columns}
}

func (o Ordering) String() string {
	tokens := make([]string, 0, len(o))

	for _, order := range o {
		sign := "+"
		if order.Direction == Descending {
			sign = "-"
		}

		tokens = append(tokens, sign+order.Field)
	}

	return strings.Join(tokens, ",")
}
