// Package crs implements the parser, AST builder, and round-trip verifier
// for the ModSecurity/OWASP Core Rule Set directive language described in
// the CRS rule engine specification.
package crs

import "strings"

// InputType is the closed set of CRS variable classes a SecRule can
// reference (REQUEST_HEADERS, ARGS, ...). from_name is case-insensitive,
// matching CRS's acceptance of "Args", "ARGS", "args".
type InputType int

const (
	ArgsCombinedSize InputType = iota
	ArgsGetNames
	ArgsGet
	ArgsPostNames
	ArgsPost
	ArgsNames
	Args
	Duration
	FilesCombinedSize
	FilesNames
	Files
	Geo
	IP
	MatchedVar
	MatchedVarsNames
	MatchedVars
	MultipartPartHeaders
	QueryString
	RemoteAddr
	ReqBodyProcessor
	RequestBasename
	RequestBody
	RequestCookiesNames
	RequestCookies
	RequestFilename
	RequestHeadersNames
	RequestHeaders
	RequestLine
	RequestMethod
	RequestProtocol
	RequestUriRaw
	RequestUri
	ResponseBody
	ResponseStatus
	TX
	UniqueId
	XML
)

// inputNames is the canonical variant -> directive-literal table. Order
// matters for ambiguous prefixes (ARGS_NAMES vs ARGS): from_name always
// matches the whole token, so order here only affects variants().
var inputNames = [...]struct {
	typ  InputType
	name string
}{
	{ArgsCombinedSize, "ARGS_COMBINED_SIZE"},
	{ArgsGetNames, "ARGS_GET_NAMES"},
	{ArgsGet, "ARGS_GET"},
	{ArgsPostNames, "ARGS_POST_NAMES"},
	{ArgsPost, "ARGS_POST"},
	{ArgsNames, "ARGS_NAMES"},
	{Args, "ARGS"},
	{Duration, "DURATION"},
	{FilesCombinedSize, "FILES_COMBINED_SIZE"},
	{FilesNames, "FILES_NAMES"},
	{Files, "FILES"},
	{Geo, "GEO"},
	{IP, "IP"},
	{MatchedVar, "MATCHED_VAR"},
	{MatchedVarsNames, "MATCHED_VARS_NAMES"},
	{MatchedVars, "MATCHED_VARS"},
	{MultipartPartHeaders, "MULTIPART_PART_HEADERS"},
	{QueryString, "QUERY_STRING"},
	{RemoteAddr, "REMOTE_ADDR"},
	{ReqBodyProcessor, "REQBODY_PROCESSOR"},
	{RequestBasename, "REQUEST_BASENAME"},
	{RequestBody, "REQUEST_BODY"},
	{RequestCookiesNames, "REQUEST_COOKIES_NAMES"},
	{RequestCookies, "REQUEST_COOKIES"},
	{RequestFilename, "REQUEST_FILENAME"},
	{RequestHeadersNames, "REQUEST_HEADERS_NAMES"},
	{RequestHeaders, "REQUEST_HEADERS"},
	{RequestLine, "REQUEST_LINE"},
	{RequestMethod, "REQUEST_METHOD"},
	{RequestProtocol, "REQUEST_PROTOCOL"},
	{RequestUriRaw, "REQUEST_URI_RAW"},
	{RequestUri, "REQUEST_URI"},
	{ResponseBody, "RESPONSE_BODY"},
	{ResponseStatus, "RESPONSE_STATUS"},
	{TX, "TX"},
	{UniqueId, "UNIQUE_ID"},
	{XML, "XML"},
}

// Name returns the canonical directive-literal spelling of i.
func (i InputType) Name() string {
	for _, entry := range inputNames {
		if entry.typ == i {
			return entry.name
		}
	}
	return ""
}

func (i InputType) String() string { return i.Name() }

// InputTypeVariants returns every InputType in table order.
func InputTypeVariants() []InputType {
	out := make([]InputType, len(inputNames))
	for idx, entry := range inputNames {
		out[idx] = entry.typ
	}
	return out
}

// InputTypeFromName resolves a directive token to its InputType,
// case-insensitively. A hazard the table must resolve correctly:
// "ARGS_NAMES" must not spuriously match "ARGS".
func InputTypeFromName(s string) (InputType, bool) {
	for _, entry := range inputNames {
		if strings.EqualFold(entry.name, s) {
			return entry.typ, true
		}
	}
	return 0, false
}

// OperatorType is the closed set of @operator names a Test can invoke.
type OperatorType int

const (
	OpContains OperatorType = iota
	OpDetectSQLi
	OpDetectXSS
	OpEndsWith
	OpEq
	OpGe
	OpGt
	OpLt
	OpGeoLookup
	OpIpMatch
	OpIpMatchFromFile
	OpPatternMatch
	OpPatternMatchFromFile
	OpRealtimeBlackhole
	OpRegex
	OpStringEquals
	OpValidateByteRange
	OpValidateUrlEncoding
	OpValidateUtf8Encoding
	OpWithin
	OpBeginsWith
)

var operatorNames = [...]struct {
	typ  OperatorType
	name string
}{
	{OpContains, "contains"},
	{OpDetectSQLi, "detectSQLi"},
	{OpDetectXSS, "detectXSS"},
	{OpEndsWith, "endsWith"},
	{OpEq, "eq"},
	{OpGe, "ge"},
	{OpGt, "gt"},
	{OpLt, "lt"},
	{OpGeoLookup, "geoLookup"},
	{OpIpMatch, "ipMatch"},
	{OpIpMatchFromFile, "ipMatchFromFile"},
	{OpPatternMatch, "pm"},
	{OpPatternMatchFromFile, "pmFromFile"},
	{OpRealtimeBlackhole, "rbl"},
	{OpRegex, "rx"},
	{OpStringEquals, "streq"},
	{OpValidateByteRange, "validateByteRange"},
	{OpValidateUrlEncoding, "validateUrlEncoding"},
	{OpValidateUtf8Encoding, "validateUtf8Encoding"},
	{OpWithin, "within"},
	{OpBeginsWith, "beginsWith"},
}

// Name returns the canonical, case-sensitive directive spelling of op.
func (op OperatorType) Name() string {
	for _, entry := range operatorNames {
		if entry.typ == op {
			return entry.name
		}
	}
	return ""
}

func (op OperatorType) String() string { return op.Name() }

// OperatorTypeVariants returns every OperatorType in table order.
func OperatorTypeVariants() []OperatorType {
	out := make([]OperatorType, len(operatorNames))
	for idx, entry := range operatorNames {
		out[idx] = entry.typ
	}
	return out
}

// OperatorTypeFromName resolves an "@name" token (without the "@") to its
// OperatorType. Matching is case-sensitive, per the directive grammar.
func OperatorTypeFromName(s string) (OperatorType, bool) {
	for _, entry := range operatorNames {
		if entry.name == s {
			return entry.typ, true
		}
	}
	return 0, false
}

// ActionType is the closed set of action names usable in a SecRule/
// SecAction action list.
type ActionType int

const (
	ActionAuditLog ActionType = iota
	ActionBlock
	ActionCapture
	ActionChain
	ActionCtl
	ActionDeny
	ActionDrop
	ActionExpireVar
	ActionId
	ActionInitCollection
	ActionLog
	ActionLogData
	ActionMsg
	ActionMultiMatch
	ActionNoAuditLog
	ActionNoLog
	ActionPass
	ActionPhase
	ActionSetvar
	ActionSeverity
	ActionSkipAfter
	ActionStatus
	ActionTag
	ActionTransform
	ActionVersion
)

var actionNames = [...]struct {
	typ  ActionType
	name string
}{
	{ActionAuditLog, "auditlog"},
	{ActionBlock, "block"},
	{ActionCapture, "capture"},
	{ActionChain, "chain"},
	{ActionCtl, "ctl"},
	{ActionDeny, "deny"},
	{ActionDrop, "drop"},
	{ActionExpireVar, "expirevar"},
	{ActionId, "id"},
	{ActionInitCollection, "initcol"},
	{ActionLog, "log"},
	{ActionLogData, "logdata"},
	{ActionMsg, "msg"},
	{ActionMultiMatch, "multiMatch"},
	{ActionNoAuditLog, "noauditlog"},
	{ActionNoLog, "nolog"},
	{ActionPass, "pass"},
	{ActionPhase, "phase"},
	{ActionSetvar, "setvar"},
	{ActionSeverity, "severity"},
	{ActionSkipAfter, "skipAfter"},
	{ActionStatus, "status"},
	{ActionTag, "tag"},
	{ActionTransform, "t"},
	{ActionVersion, "ver"},
}

// Name returns the canonical, case-sensitive directive spelling of a.
func (a ActionType) Name() string {
	for _, entry := range actionNames {
		if entry.typ == a {
			return entry.name
		}
	}
	return ""
}

func (a ActionType) String() string { return a.Name() }

// ActionTypeVariants returns every ActionType in table order.
func ActionTypeVariants() []ActionType {
	out := make([]ActionType, len(actionNames))
	for idx, entry := range actionNames {
		out[idx] = entry.typ
	}
	return out
}

// ActionTypeFromName resolves an action directive name to its ActionType.
// Matching is case-sensitive.
func ActionTypeFromName(s string) (ActionType, bool) {
	for _, entry := range actionNames {
		if entry.name == s {
			return entry.typ, true
		}
	}
	return 0, false
}
