package domain

import "encoding/json"

// Document is the site content: an opaque JSON object keyed by named
// sections ("hero", "team", "faq", ...). No schema is enforced server-side;
// section values are kept as raw JSON so an update to one section can
// never reshape the others.
type Document map[string]json.RawMessage
