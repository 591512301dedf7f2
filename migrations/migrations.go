// Package migrations, goose ile çalıştırılan gömülü SQL dosyalarını taşır.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
