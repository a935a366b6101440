// Copyright 2024 The PackMySeal Authors. All rights reserved.

package utils

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zip"

	"packmyseal.io/pms/pkg/errors"
)

// DirExists returns whether the given path exists.
func DirExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// RmNewline removes all line breaks from the string, used by tests to
// compare multi-line log output.
func RmNewline(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r\n", ""), "\n", "")
}

// CreateFileIfNotExist will create a file under 'filePath' with the content
// from 'storeFunc' if the file does not exist.
func CreateFileIfNotExist(filePath string, storeFunc func() error) error {
	if !DirExists(filePath) {
		if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
			return err
		}
		return storeFunc()
	}
	return nil
}

// ExtractZip extracts the zip archive at 'zipPath' into 'destDir', creating
// the destination if needed. Entries escaping the destination are rejected.
func ExtractZip(zipPath, destDir string) error {
	reader, err := zip.OpenReader(zipPath)
	if err != nil {
		return fmt.Errorf("%w: %s", errors.ExtractionFailed, err)
	}
	defer reader.Close()

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return fmt.Errorf("%w: %s", errors.ExtractionFailed, err)
	}

	for _, file := range reader.File {
		target := filepath.Join(destDir, file.Name)
		// zip-slip guard
		if !strings.HasPrefix(target, filepath.Clean(destDir)+string(os.PathSeparator)) {
			return fmt.Errorf("%w: illegal file path %s", errors.ExtractionFailed, file.Name)
		}

		if file.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return fmt.Errorf("%w: %s", errors.ExtractionFailed, err)
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return fmt.Errorf("%w: %s", errors.ExtractionFailed, err)
		}

		src, err := file.Open()
		if err != nil {
			return fmt.Errorf("%w: %s", errors.ExtractionFailed, err)
		}

		dst, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, file.Mode())
		if err != nil {
			src.Close()
			return fmt.Errorf("%w: %s", errors.ExtractionFailed, err)
		}

		_, err = io.Copy(dst, src)
		src.Close()
		dst.Close()
		if err != nil {
			return fmt.Errorf("%w: %s", errors.ExtractionFailed, err)
		}
	}

	return nil
}

// CreateZipFromDir packs the contents of 'srcDir' into a zip archive at
// 'zipPath'. Paths inside the archive are relative to 'srcDir'.
func CreateZipFromDir(srcDir, zipPath string) error {
	zipFile, err := os.Create(zipPath)
	if err != nil {
		return err
	}
	defer zipFile.Close()

	writer := zip.NewWriter(zipFile)
	defer writer.Close()

	return filepath.Walk(srcDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}

		entry, err := writer.Create(filepath.ToSlash(rel))
		if err != nil {
			return err
		}

		src, err := os.Open(path)
		if err != nil {
			return err
		}
		defer src.Close()

		_, err = io.Copy(entry, src)
		return err
	})
}

// AskConfirm asks the user the question 'msg (y/N)' on 'out' and reads the
// answer from 'in'. Only 'y' and 'yes' count as consent.
func AskConfirm(msg string, in io.Reader, out io.Writer) bool {
	fmt.Fprintf(out, "%s (y/N): ", msg)
	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}
