package lexer

import (
	"unicode"
)

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid    TokenType = iota
	TokenOpenList             // Open parenthesis: "("
	TokenCloseList            // Close parenthesis: ")"
	TokenInteger              // Decimal digits: [0-9]+
	TokenSymbol               // Identifier or operator: "+", "-", foo_bar1
)

var tokenValues = map[TokenType][]rune{
	TokenOpenList:  []rune{'('},
	TokenCloseList: []rune{')'},
	TokenInteger:   []rune("0123456789"),
}

var tokenNames = map[TokenType]string{
	TokenInvalid:   "invalid",
	TokenOpenList:  "open_list",
	TokenCloseList: "close_list",
	TokenInteger:   "integer",
	TokenSymbol:    "symbol",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

func isTokenType(tt TokenType) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range tokenValues[tt] {
			if v == r {
				return true
			}
		}
		return false
	}
}

var (
	isOpenList  = isTokenType(TokenOpenList)
	isCloseList = isTokenType(TokenCloseList)
	isDigit     = isTokenType(TokenInteger)
)

func isAritmeticSign(r rune) bool {
	return r == '+' || r == '-'
}

func isWhitespace(r rune) bool {
	return r >= 0 && unicode.IsSpace(r)
}

func isAlphabetic(r rune) bool {
	return unicode.IsLetter(r) || unicode.Is(unicode.Nl, r) || unicode.Is(unicode.Other_Alphabetic, r)
}

func isWordStart(r rune) bool {
	return isAlphabetic(r)
}

func isWordBody(r rune) bool {
	return isAlphabetic(r) || unicode.IsNumber(r) || r == '_'
}
