package repository

import (
	"strconv"
	"strings"
)

// conditions accumulates WHERE clauses with positional arguments.
type conditions struct {
	clauses []string
	args    []interface{}
}

// add appends a clause; each "?" in clause is replaced by the next $n.
func (c *conditions) add(clause string, args ...interface{}) {
	for _, a := range args {
		c.args = append(c.args, a)
		clause = strings.Replace(clause, "?", "$"+strconv.Itoa(len(c.args)), 1)
	}
	c.clauses = append(c.clauses, clause)
}

// where renders " WHERE a AND b" or "" when empty.
func (c *conditions) where() string {
	if len(c.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(c.clauses, " AND ")
}

// and renders " AND a AND b" for appending to an existing predicate.
func (c *conditions) and() string {
	if len(c.clauses) == 0 {
		return ""
	}
	return " AND " + strings.Join(c.clauses, " AND ")
}

// next returns the placeholder for an argument appended after the clauses.
func (c *conditions) next(arg interface{}) string {
	c.args = append(c.args, arg)
	return "$" + strconv.Itoa(len(c.args))
}

// escapeLike escapes LIKE wildcards so user input matches literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
