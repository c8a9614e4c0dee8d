package httpapi

import (
	"bytes"
	_ "embed"
	"net/http"
	"time"
)

//go:embed openapi.yaml
var openAPIDocument []byte

// docsPage loads Swagger UI from a CDN and points it at /openapi.yaml.
var docsPage = []byte(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Club Registry API</title>
<link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
<div id="docs"></div>
<script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
<script>SwaggerUIBundle({url: "/openapi.yaml", dom_id: "#docs"});</script>
</body>
</html>
`)

// docsBuilt is reported as Last-Modified so browsers can revalidate the docs.
var docsBuilt = time.Now().UTC().Truncate(time.Second)

func (h *Handler) OpenAPI(w http.ResponseWriter, r *http.Request) {
	serveEmbedded(w, r, "openapi.yaml", "application/yaml; charset=utf-8", openAPIDocument)
}

func (h *Handler) SwaggerUI(w http.ResponseWriter, r *http.Request) {
	serveEmbedded(w, r, "index.html", "text/html; charset=utf-8", docsPage)
}

func serveEmbedded(w http.ResponseWriter, r *http.Request, name, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	http.ServeContent(w, r, name, docsBuilt, bytes.NewReader(body))
}
