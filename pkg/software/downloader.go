// SPDX-License-Identifier: Apache-2.0

package software

import (
	"context"
	"crypto/md5"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"io"
	"net/http"
	"os"
	"time"
)

// Downloader is responsible for downloading a software artifact and checking its integrity.
type Downloader struct {
	client  *http.Client
	timeout time.Duration
}

// NewDownloader creates a new Downloader with default settings
func NewDownloader() *Downloader {
	return NewDownloaderWithTimeout(30 * time.Minute) // Default timeout for large downloads
}

// NewDownloaderWithTimeout creates a new Downloader with custom timeout
func NewDownloaderWithTimeout(timeout time.Duration) *Downloader {
	return &Downloader{
		client: &http.Client{
			Timeout: timeout,
		},
		timeout: timeout,
	}
}

// Download downloads a file from the given URL to the specified destination
func (fd *Downloader) Download(ctx context.Context, url, destination string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return NewDownloadError(err, url, 0)
	}

	resp, err := fd.client.Do(req)
	if err != nil {
		return NewDownloadError(err, url, 0)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return NewDownloadError(nil, url, resp.StatusCode)
	}

	out, err := os.Create(destination)
	if err != nil {
		return NewDownloadError(err, url, 0)
	}
	defer func() { _ = out.Close() }()

	if _, err = io.Copy(out, resp.Body); err != nil {
		return NewDownloadError(err, url, 0)
	}

	return nil
}

// Checksum verifies the hash of a file.
// hashFunction is the hash function to use, e.g. md5.New(), sha256.New(), sha512.New()
func (fd *Downloader) Checksum(filePath string, expectedHash string, hashFunction hash.Hash) error {
	file, err := os.Open(filePath)
	if err != nil {
		return NewFileNotFoundError(filePath)
	}
	defer func() { _ = file.Close() }()

	if _, err := io.Copy(hashFunction, file); err != nil {
		return NewChecksumError(filePath, "unknown", expectedHash, "")
	}

	calculatedHash := fmt.Sprintf("%x", hashFunction.Sum(nil))
	if calculatedHash != expectedHash {
		return NewChecksumError(filePath, "unknown", expectedHash, calculatedHash)
	}

	return nil
}

// VerifyChecksum dynamically verifies the checksum of a file using the specified algorithm
func (fd *Downloader) VerifyChecksum(filePath string, expectedValue string, algorithm string) error {
	switch algorithm {
	case "md5":
		return fd.Checksum(filePath, expectedValue, md5.New())
	case "sha256":
		return fd.Checksum(filePath, expectedValue, sha256.New())
	case "sha512":
		return fd.Checksum(filePath, expectedValue, sha512.New())
	default:
		return NewChecksumError(filePath, algorithm, expectedValue, "")
	}
}
