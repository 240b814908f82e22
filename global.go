package main

import (
	"embed"
	"os"
	"path/filepath"
)

// os
var (
	ex, _  = os.Executable()
	exPath = filepath.Dir(ex)
)

// embed etc
//
//go:embed etc/*.txt
var etcEMFS embed.FS
