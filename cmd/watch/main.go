package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"billwise/pkg/imgio"
	"billwise/pkg/receipt"

	"github.com/fsnotify/fsnotify"
)

var extMime = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".pdf":  "application/pdf",
}

// Bulk-ingestion helper for the expense tracker: receipts dropped into the
// watched directory are extracted and a JSON sidecar is written next to
// each one.
func main() {
	dir := flag.String("dir", ".", "directory to watch for receipt files")
	flag.Parse()

	ex := receipt.NewExtractor(receipt.NewTesseract(os.Getenv("TESSDATA_PREFIX")))

	w, err := fsnotify.NewWatcher()
	if err != nil {
		log.Fatalf("watcher: %v", err)
	}
	defer w.Close()
	if err := w.Add(*dir); err != nil {
		log.Fatalf("watch %s: %v", *dir, err)
	}
	log.Printf("Watching %s (debounced) ...", *dir)

	// Debounce Create events: the writer may still be flushing the file.
	pending := map[string]time.Time{}
	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if ev.Op&fsnotify.Create == fsnotify.Create {
				if _, supported := extMime[strings.ToLower(filepath.Ext(ev.Name))]; supported {
					pending[ev.Name] = time.Now()
				}
			}
		case werr, ok := <-w.Errors:
			if !ok {
				return
			}
			log.Printf("watch error: %v", werr)
		case <-ticker.C:
			for name, at := range pending {
				if time.Since(at) < 500*time.Millisecond {
					continue
				}
				delete(pending, name)
				process(ex, name)
			}
		}
	}
}

func process(ex *receipt.Extractor, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("read %s: %v", path, err)
		return
	}
	img, err := imgio.Decode(data, extMime[strings.ToLower(filepath.Ext(path))])
	if err != nil {
		log.Printf("decode %s: %v", path, err)
		return
	}
	fields, err := ex.ExtractFields(img)
	if err != nil {
		log.Printf("extract %s: %v", path, err)
		return
	}
	out, _ := json.Marshal(fields)
	sidecar := strings.TrimSuffix(path, filepath.Ext(path)) + ".json"
	if err := os.WriteFile(sidecar, out, 0o644); err != nil {
		log.Printf("write %s: %v", sidecar, err)
		return
	}
	log.Printf("processed %s -> %s", filepath.Base(path), filepath.Base(sidecar))
}
