package main

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/filespect/filespect/profile"
	"github.com/filespect/filespect/reader"
)

// discover resolves the positional inputs to a deduplicated, ordered
// list of profilable files. Non-existent paths are reported and skipped.
func discover(inputs []string, recursive bool, log *logrus.Logger) []string {
	var files []string

	for _, in := range inputs {
		stat, err := os.Stat(in)
		if err != nil {
			log.WithField("path", in).Warn("skipping non-existent path")
			continue
		}

		if !stat.IsDir() {
			if resolveKind(in) == "" {
				log.WithField("path", in).Warn("skipping unsupported file")
				continue
			}
			files = append(files, in)
			continue
		}

		filepath.WalkDir(in, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				log.WithField("path", path).WithError(err).Warn("cannot read path")
				return nil
			}

			if d.IsDir() {
				if !recursive && path != in {
					return fs.SkipDir
				}
				return nil
			}

			if resolveKind(path) != "" {
				files = append(files, path)
			}
			return nil
		})
	}

	// Deduplicate by absolute path, preserving order.
	return lo.UniqBy(files, func(p string) string {
		abs, err := filepath.Abs(p)
		if err != nil {
			return p
		}
		return abs
	})
}

// resolveKind maps a file to its input kind: by extension first, then by
// content sniffing for files with unrecognized extensions.
func resolveKind(path string) profile.Kind {
	if kind, _ := reader.DetectKind(path); kind != "" {
		return kind
	}
	return sniffKind(path)
}

func sniffKind(path string) profile.Kind {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return ""
	}

	switch {
	case mtype.Is("application/json"):
		return profile.KindStructured
	case mtype.Is("text/csv"):
		return profile.KindTable
	}

	for m := mtype; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return profile.KindText
		}
	}

	return ""
}
