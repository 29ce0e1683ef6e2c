package statement

import (
	"fmt"
	"strings"

	uuid "github.com/satori/go.uuid"

	"github.com/adamluzsi/rdfstream/internal/errorkit"
)

const ErrMalformedNode errorkit.Error = "malformed node"

// Kind tells what sort of RDF term a Node holds.
type Kind int

const (
	// KindUnset is the zero Kind, a Node with it is an empty slot of a statement.
	KindUnset Kind = iota
	KindURI
	KindLiteral
	KindBlank
)

func (k Kind) String() string {
	switch k {
	case KindUnset:
		return "unset"
	case KindURI:
		return "uri"
	case KindLiteral:
		return "literal"
	case KindBlank:
		return "blank"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Node is an RDF term.
// Nodes are plain values, so assigning one makes an independent copy.
type Node struct {
	Kind  Kind   `json:"kind"`
	Value string `json:"value"`
	// Language is the language tag of a literal.
	Language string `json:"language,omitempty"`
	// Datatype is the datatype URI of a typed literal.
	Datatype string `json:"datatype,omitempty"`
}

func URI(uri string) Node { return Node{Kind: KindURI, Value: uri} }

func Literal(value string) Node { return Node{Kind: KindLiteral, Value: value} }

func LangLiteral(value, language string) Node {
	return Node{Kind: KindLiteral, Value: value, Language: language}
}

func TypedLiteral(value, datatype string) Node {
	return Node{Kind: KindLiteral, Value: value, Datatype: datatype}
}

func Blank(id string) Node { return Node{Kind: KindBlank, Value: id} }

// NewBlank returns a blank node with a freshly generated identifier.
func NewBlank() Node {
	return Blank("b" + strings.ReplaceAll(uuid.NewV4().String(), "-", ""))
}

func (n Node) IsZero() bool { return n == Node{} }

func (n Node) Equal(oth Node) bool { return n == oth }

// String formats the node as an N-Triples term.
func (n Node) String() string {
	switch n.Kind {
	case KindURI:
		return "<" + n.Value + ">"
	case KindBlank:
		return "_:" + n.Value
	case KindLiteral:
		lit := `"` + escape(n.Value) + `"`
		switch {
		case n.Language != "":
			return lit + "@" + n.Language
		case n.Datatype != "":
			return lit + "^^<" + n.Datatype + ">"
		default:
			return lit
		}
	default:
		return "?"
	}
}

var (
	escaper   = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", `\r`, "\t", `\t`)
	unescaper = strings.NewReplacer(`\\`, `\`, `\"`, `"`, `\n`, "\n", `\r`, "\r", `\t`, "\t")
)

func escape(s string) string { return escaper.Replace(s) }

// ParseNode reads a single term written in N-Triples term syntax.
// "?" and the empty string yield the zero Node.
// Tokens that are not delimited as a term are taken as plain literals.
func ParseNode(token string) (Node, error) {
	token = strings.TrimSpace(token)
	switch {
	case token == "" || token == "?":
		return Node{}, nil

	case strings.HasPrefix(token, "<"):
		if !strings.HasSuffix(token, ">") || len(token) < 3 {
			return Node{}, ErrMalformedNode.F("unterminated uri: %s", token)
		}
		return URI(token[1 : len(token)-1]), nil

	case strings.HasPrefix(token, "_:"):
		if len(token) == 2 {
			return Node{}, ErrMalformedNode.F("blank node without label")
		}
		return Blank(token[2:]), nil

	case strings.HasPrefix(token, `"`):
		end := closingQuote(token)
		if end < 0 {
			return Node{}, ErrMalformedNode.F("unterminated literal: %s", token)
		}
		value := unescaper.Replace(token[1:end])
		rest := token[end+1:]
		switch {
		case rest == "":
			return Literal(value), nil
		case strings.HasPrefix(rest, "@") && 1 < len(rest):
			return LangLiteral(value, rest[1:]), nil
		case strings.HasPrefix(rest, "^^<") && strings.HasSuffix(rest, ">") && 4 < len(rest):
			return TypedLiteral(value, rest[3:len(rest)-1]), nil
		default:
			return Node{}, ErrMalformedNode.F("unexpected literal suffix: %s", rest)
		}

	default:
		return Literal(token), nil
	}
}

func closingQuote(token string) int {
	for i := 1; i < len(token); i++ {
		switch token[i] {
		case '\\':
			i++
		case '"':
			return i
		}
	}
	return -1
}
