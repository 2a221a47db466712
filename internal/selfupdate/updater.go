package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// binaryName is the executable inside release archives.
const binaryName = "pathdash"

const checksumsAsset = "checksums.txt"

var (
	ErrDevBuild      = errors.New("cannot update a development build")
	ErrAlreadyLatest = errors.New("already running the latest version")
	ErrChecksum      = errors.New("checksum verification failed")
	ErrNoAsset       = errors.New("release has no build for this platform")
)

type UpdateInput struct {
	CurrentVersion string
	// TargetVersion pins a release tag; empty means latest.
	TargetVersion string
}

type UpdateProgress struct {
	Stage   string
	Message string
}

// Update downloads the release archive for the running platform, checks it
// against the release's checksums.txt and swaps it in for the executable.
func (c *Checker) Update(ctx context.Context, input *UpdateInput, progress func(UpdateProgress)) error {
	if progress == nil {
		progress = func(UpdateProgress) {}
	}
	if isDevBuild(input.CurrentVersion) {
		return ErrDevBuild
	}

	progress(UpdateProgress{Stage: "check", Message: "Looking up release..."})
	var (
		rel *release
		err error
	)
	if input.TargetVersion != "" {
		rel, err = c.fetchRelease(ctx, "tags/"+input.TargetVersion)
	} else {
		rel, err = c.fetchRelease(ctx, "latest")
		if err == nil && !newer(rel.TagName, input.CurrentVersion) {
			return ErrAlreadyLatest
		}
	}
	if err != nil {
		return fmt.Errorf("check for updates: %w", err)
	}

	archive, ok := rel.platformAsset(c.goos, c.goarch)
	if !ok {
		return fmt.Errorf("%w: %s/%s in %s", ErrNoAsset, c.goos, c.goarch, rel.TagName)
	}
	sums, ok := rel.asset(checksumsAsset)
	if !ok {
		return fmt.Errorf("%w: %s has no %s", ErrChecksum, rel.TagName, checksumsAsset)
	}

	targetPath, err := c.execPath()
	if err != nil {
		return fmt.Errorf("resolve executable path: %w", err)
	}
	workDir, err := os.MkdirTemp(filepath.Dir(targetPath), "."+binaryName+"-update-*")
	if err != nil {
		return fmt.Errorf("create work dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(workDir) }()

	progress(UpdateProgress{Stage: "download", Message: fmt.Sprintf("Downloading %s...", archive.Name)})
	archivePath := filepath.Join(workDir, archive.Name)
	digest, err := c.download(ctx, archive.URL, archivePath, sha256.New())
	if err != nil {
		return fmt.Errorf("download archive: %w", err)
	}

	progress(UpdateProgress{Stage: "verify", Message: "Verifying checksum..."})
	sumsPath := filepath.Join(workDir, checksumsAsset)
	if _, err := c.download(ctx, sums.URL, sumsPath, nil); err != nil {
		return fmt.Errorf("download checksums: %w", err)
	}
	sumsData, err := os.ReadFile(sumsPath)
	if err != nil {
		return err
	}
	want, ok := parseChecksums(sumsData)[archive.Name]
	if !ok {
		return fmt.Errorf("%w: %s is not listed in %s", ErrChecksum, archive.Name, checksumsAsset)
	}
	if !strings.EqualFold(want, digest) {
		return fmt.Errorf("%w: expected %s, got %s", ErrChecksum, want, digest)
	}

	progress(UpdateProgress{Stage: "extract", Message: "Extracting binary..."})
	newBinary := filepath.Join(workDir, binaryName+"-new")
	if err := extractBinary(archivePath, newBinary); err != nil {
		return fmt.Errorf("extract binary: %w", err)
	}

	progress(UpdateProgress{Stage: "apply", Message: "Replacing executable..."})
	if err := replaceExecutable(newBinary, targetPath); err != nil {
		return fmt.Errorf("apply update: %w", err)
	}

	progress(UpdateProgress{Stage: "done", Message: fmt.Sprintf("Updated to %s", rel.TagName)})
	return nil
}

// platformAsset finds the archive built for goos/goarch. Archives follow the
// goreleaser default name_version_os_arch.ext, so only the suffix is matched.
func (r *release) platformAsset(goos, goarch string) (asset, bool) {
	ext := ".tar.gz"
	if goos == "windows" {
		ext = ".zip"
	}
	suffix := fmt.Sprintf("_%s_%s%s", goos, goarch, ext)
	for _, a := range r.Assets {
		if strings.HasPrefix(a.Name, binaryName+"_") && strings.HasSuffix(a.Name, suffix) {
			return a, true
		}
	}
	return asset{}, false
}

func (r *release) asset(name string) (asset, bool) {
	for _, a := range r.Assets {
		if a.Name == name {
			return a, true
		}
	}
	return asset{}, false
}

// download streams url into path and returns the hex digest when h is set.
func (c *Checker) download(ctx context.Context, url, path string, h hash.Hash) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	var w io.Writer = f
	if h != nil {
		w = io.MultiWriter(f, h)
	}
	if _, err := io.Copy(w, resp.Body); err != nil {
		_ = f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	if h == nil {
		return "", nil
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// parseChecksums reads "<sha256>  <file>" lines.
func parseChecksums(data []byte) map[string]string {
	result := make(map[string]string)
	for _, line := range strings.Split(string(data), "\n") {
		parts := strings.Fields(line)
		if len(parts) != 2 {
			continue
		}
		result[parts[1]] = parts[0]
	}
	return result
}

// extractBinary copies the pathdash executable out of the archive at src
// into dst.
func extractBinary(src, dst string) error {
	if strings.HasSuffix(src, ".zip") {
		return extractFromZip(src, binaryName+".exe", dst)
	}
	return extractFromTarGz(src, binaryName, dst)
}

func extractFromTarGz(src, name, dst string) error {
	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return fmt.Errorf("open gzip: %w", err)
	}
	defer func() { _ = gz.Close() }()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return fmt.Errorf("binary %q not found in archive", name)
		}
		if err != nil {
			return fmt.Errorf("read tar: %w", err)
		}
		if hdr.Typeflag == tar.TypeReg && filepath.Base(hdr.Name) == name {
			return writeFile(dst, tr)
		}
	}
}

func extractFromZip(src, name, dst string) error {
	zr, err := zip.OpenReader(src)
	if err != nil {
		return fmt.Errorf("open zip: %w", err)
	}
	defer func() { _ = zr.Close() }()

	for _, f := range zr.File {
		if filepath.Base(f.Name) != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return err
		}
		defer func() { _ = rc.Close() }()
		return writeFile(dst, rc)
	}
	return fmt.Errorf("binary %q not found in archive", name)
}

func writeFile(path string, r io.Reader) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// replaceExecutable moves src over target, keeping target's permissions.
// src must live on the same filesystem as target.
func replaceExecutable(src, target string) error {
	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("stat target: %w", err)
	}
	if err := os.Chmod(src, info.Mode().Perm()); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}
	if err := os.Rename(src, target); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
