// Package file holds the TOML-backed ConfigStore. Settings live in
// ~/.runbooks/config.toml and are addressed with dotted keys such as
// scraper.base_url.
package file
