// Package fixtures creates random nodes and statements for tests.
package fixtures

import (
	"strings"
	"sync"

	"github.com/Pallinder/go-randomdata"

	"github.com/adamluzsi/rdfstream/statement"
)

// randomdata shares a global source
var mutex sync.Mutex

func URI() statement.Node {
	mutex.Lock()
	defer mutex.Unlock()
	return statement.URI("http://" + strings.ToLower(randomdata.SillyName()) + ".example/" + randomdata.Noun())
}

func Literal() statement.Node {
	mutex.Lock()
	defer mutex.Unlock()
	switch randomdata.Number(0, 3) {
	case 0:
		return statement.LangLiteral(randomdata.SillyName(), "en")
	case 1:
		return statement.TypedLiteral(randomdata.StringNumber(1, ""), "http://www.w3.org/2001/XMLSchema#integer")
	default:
		return statement.Literal(randomdata.Paragraph())
	}
}

func Blank() statement.Node {
	return statement.NewBlank()
}

// Node returns a node of a random kind.
func Node() statement.Node {
	mutex.Lock()
	n := randomdata.Number(0, 3)
	mutex.Unlock()
	switch n {
	case 0:
		return URI()
	case 1:
		return Literal()
	default:
		return Blank()
	}
}

// Nodes returns n distinct nodes.
func Nodes(n int) []statement.Node {
	var (
		vs   []statement.Node
		seen = map[statement.Node]struct{}{}
	)
	for len(vs) < n {
		node := Node()
		if _, ok := seen[node]; ok {
			continue
		}
		seen[node] = struct{}{}
		vs = append(vs, node)
	}
	return vs
}

// Statement returns a complete statement.
func Statement() statement.Statement {
	return statement.Statement{
		Subject:   URI(),
		Predicate: URI(),
		Object:    Node(),
	}
}

// Template returns a complete statement except the given field, which is left blank.
func Template(field statement.Field) statement.Statement {
	s := Statement()
	s.Set(field, statement.Node{})
	return s
}
