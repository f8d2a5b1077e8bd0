package extract

import "github.com/shieldcli/crscore/internal/crs"

// sourcesFor is the InputType -> []SourceType composition table: which
// wire locations a SecRule variable draws from. An InputType with no
// entry names something the engine does not extract from a live request
// (e.g. FILES, which requires a multipart body decoder this engine does
// not implement).
var sourcesFor = map[crs.InputType][]SourceType{
	crs.ArgsGet:              {SourceQueryArg},
	crs.ArgsGetNames:         {SourceQueryArgName},
	crs.ArgsPost:             {SourcePostArg, SourceJSONArg},
	crs.ArgsPostNames:        {SourcePostArgName, SourceJSONArgName},
	crs.Args:                 {SourceQueryArg, SourcePostArg, SourceJSONArg},
	crs.ArgsNames:            {SourceQueryArgName, SourcePostArgName, SourceJSONArgName},
	crs.QueryString:          {SourceURIQuery},
	crs.RequestBody:          {SourceBody},
	crs.RequestCookiesNames:  {SourceCookieName},
	crs.RequestCookies:       {SourceCookie},
	crs.RequestFilename:      {SourceURIPath},
	crs.RequestHeadersNames:  {SourceHeaderName},
	crs.RequestHeaders:       {SourceHeader},
	crs.RequestMethod:        {SourceMethod},
	crs.RequestProtocol:      {SourceProtocol},
	crs.RequestUri:           {SourceURIPathAndQuery},
	crs.RequestUriRaw:        {SourceURIFull},
	crs.XML:                  {SourceXMLProp, SourceXMLText},
}

// SourcesForInput returns the SourceType set that crs.InputType draws
// from, and whether the engine knows how to extract that InputType at
// all.
func SourcesForInput(t crs.InputType) ([]SourceType, bool) {
	sources, ok := sourcesFor[t]
	return sources, ok
}
