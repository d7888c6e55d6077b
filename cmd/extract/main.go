package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"billwise/pkg/imgio"
	"billwise/pkg/receipt"
)

var extMime = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".pdf":  "application/pdf",
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: extract <receipt-file>")
		os.Exit(1)
	}
	path := os.Args[1]
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read: %v\n", err)
		os.Exit(1)
	}
	img, err := imgio.Decode(data, extMime[strings.ToLower(filepath.Ext(path))])
	if err != nil {
		fmt.Fprintf(os.Stderr, "decode: %v\n", err)
		os.Exit(1)
	}

	ex := receipt.NewExtractor(receipt.NewTesseract(os.Getenv("TESSDATA_PREFIX")))
	fields, err := ex.ExtractFields(img)
	if err != nil {
		fmt.Fprintf(os.Stderr, "extract: %v\n", err)
		os.Exit(1)
	}
	out, _ := json.MarshalIndent(fields, "", "  ")
	fmt.Println(string(out))
}
