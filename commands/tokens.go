package commands

import (
	"strconv"
	"strings"
)

type TokenType string

type Token struct {
	Type    TokenType
	Literal string
}

const (
	ILLEGAL = "ILLEGAL"

	IDENT  = "IDENT"
	NUMBER = "NUMBER"

	ECHO   = "ECHO"
	STATUS = "STATUS"

	ATTACK    = "ATTACK"
	REPLENISH = "REPLENISH"

	MOVE     = "MOVE"
	RECHARGE = "RECHARGE"
	SPEAK    = "SPEAK"
	CLEAN    = "CLEAN"
)

var keywords = map[string]TokenType{
	"echo": ECHO,

	"status": STATUS,
	"st":     STATUS,

	"attack":    ATTACK,
	"replenish": REPLENISH,

	"move":     MOVE,
	"go":       MOVE,
	"recharge": RECHARGE,
	"speak":    SPEAK,
	"say":      SPEAK,
	"clean":    CLEAN,
}

// Order matters here: a prefix completes to the first entry it matches.
var keywordsList = []string{
	"attack",
	"clean",
	"echo",
	"move",
	"recharge",
	"replenish",
	"status",
	"speak",
}

func lookupCommand(ident string) Token {
	word := strings.ToLower(ident)
	if tok, ok := keywords[word]; ok {
		return Token{tok, ident}
	} else {
		newIdent := AutoComplete(word, keywordsList)
		if tok, ok := keywords[newIdent]; ok {
			return Token{tok, ident}
		}
	}
	return Token{ILLEGAL, ident}
}

func lookupIdent(ident string) Token {
	if _, err := strconv.Atoi(ident); err == nil {
		return Token{NUMBER, ident}
	}
	return Token{IDENT, ident}
}

func AutoComplete(stub string, words []string) string {
	for _, s := range words {
		if strings.HasPrefix(s, stub) {
			return s
		}
	}
	return stub
}
