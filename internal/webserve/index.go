package webserve

import _ "embed"

// indexPage is the fallback dashboard served when the site directory has no
// page of its own. It renders the generated data.json client-side.
//
//go:embed index.html
var indexPage []byte
