package clickatell

import (
	"regexp"
	"strings"
)

// responseKind tags a parsed gateway response by its leading token.
type responseKind int

const (
	respOK responseKind = iota
	respID
	respErr
	respCredit
	respOther
)

// response is the tagged result of parsing one plaintext gateway line.
// The gateway's grammar is irregular per endpoint, so the parser only
// classifies the leading token and exposes the raw colon-split fields;
// each endpoint decides what the remaining fields mean.
type response struct {
	kind   responseKind
	fields []string // colon-split fields, untrimmed past the leading token
	code   string   // gateway error code for respErr
	desc   string   // gateway error description for respErr
	raw    string
}

// reportSplit matches a run of whitespace and/or colons. The charge-bearing
// endpoints (delmsg, getmsgcharge) answer with "ID: <id> charge: <n>
// status: <s>" lines that mix both separators.
var reportSplit = regexp.MustCompile(`[\s:]+`)

// parseResponse classifies a gateway body by its leading colon-delimited
// token. It never assumes a fixed field count.
func parseResponse(body string) response {
	fields := strings.Split(body, ":")

	r := response{
		kind:   respOther,
		fields: fields,
		raw:    body,
	}

	switch strings.TrimSpace(fields[0]) {
	case "OK":
		r.kind = respOK
	case "ID":
		r.kind = respID
	case "Credit":
		r.kind = respCredit
	case "ERR":
		r.kind = respErr
		r.code, r.desc = parseErrFields(fields)
	}

	return r
}

// parseErrFields extracts the code and description from the remainder of an
// "ERR:<code>,<description>" line. The description may itself contain
// commas; only the first comma separates the code.
func parseErrFields(fields []string) (code, desc string) {
	if len(fields) < 2 {
		return "", ""
	}

	rest := strings.Join(fields[1:], ":")

	code, desc, found := strings.Cut(rest, ",")
	if !found {
		return strings.TrimSpace(rest), ""
	}

	return strings.TrimSpace(code), strings.TrimSpace(desc)
}

// value returns the trimmed field at position i, or "" when the response
// has fewer fields.
func (r response) value(i int) string {
	if i >= len(r.fields) {
		return ""
	}

	return strings.TrimSpace(r.fields[i])
}

// last returns the trimmed trailing field.
func (r response) last() string {
	return strings.TrimSpace(r.fields[len(r.fields)-1])
}

// reportTokens re-tokenizes the body on runs of whitespace-or-colon for the
// endpoints that answer with charge reports.
func (r response) reportTokens() []string {
	return reportSplit.Split(strings.TrimSpace(r.raw), -1)
}

// chargeReport reports whether the body is an "ID: <id> charge: <n>
// status: <s>" line and returns its tokens.
func (r response) chargeReport() ([]string, bool) {
	tokens := r.reportTokens()
	if len(tokens) >= 6 && tokens[2] == "charge" {
		return tokens, true
	}

	return nil, false
}
