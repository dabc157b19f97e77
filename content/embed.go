package content

import _ "embed"

//go:embed demo.yaml
var defaultDocument []byte
