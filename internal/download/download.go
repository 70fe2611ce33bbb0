// Package download fetches the Selenium server and browser driver binaries
// needed to run a local WebDriver service.
package download

import (
	"context"
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/blang/semver"
	"github.com/golang/glog"
	"github.com/google/go-github/v27/github"
	"golang.org/x/sync/errgroup"
	"google.golang.org/api/option"
)

// File describes how to download a file from the Web.
type File struct {
	URL      string
	Name     string
	Hash     string
	HashType string // default is sha256
	// Rename, if set, is a (from, to) pair applied after unpacking.
	Rename []string
	// Version is the release the file belongs to, when known.
	Version semver.Version
}

// Path returns where the file is stored inside directory.
func (f File) Path(directory string) string {
	if directory != "" {
		return filepath.Join(directory, f.Name)
	}
	return f.Name
}

// SeleniumServer is the standalone Selenium server JAR.
var SeleniumServer = File{
	URL:     "https://selenium-release.storage.googleapis.com/3.141/selenium-server-standalone-3.141.59.jar",
	Name:    "selenium-server.jar",
	Hash:    "acf71b77d1b66b55db6fb0bed6d8bae2bbd481311bcbedfeff472c0d15e8f3cb",
	Version: semver.MustParse("3.141.59"),
}

// MinGeckodriver is the oldest geckodriver release accepted from GitHub.
var MinGeckodriver = semver.MustParse("0.24.0")

// Fetcher resolves and downloads files.
type Fetcher struct {
	// Client is used for plain downloads. It defaults to http.DefaultClient.
	Client *http.Client
	// GitHub is used to look up releases. It defaults to an unauthenticated
	// client.
	GitHub *github.Client
}

func (f *Fetcher) client() *http.Client {
	if f.Client != nil {
		return f.Client
	}
	return http.DefaultClient
}

func (f *Fetcher) github() *github.Client {
	if f.GitHub != nil {
		return f.GitHub
	}
	return github.NewClient(f.client())
}

// LatestRelease returns the asset matching assetName from the latest release
// of owner/repo. The release tag must be a semantic version no older than
// minVersion.
func (f *Fetcher) LatestRelease(ctx context.Context, owner, repo, assetName, localName string, minVersion semver.Version) (File, error) {
	assetNameRE, err := regexp.Compile(assetName)
	if err != nil {
		return File{}, fmt.Errorf("invalid asset name regular expression %q: %v", assetName, err)
	}
	rel, _, err := f.github().Repositories.GetLatestRelease(ctx, owner, repo)
	if err != nil {
		return File{}, fmt.Errorf("looking up the latest %s/%s release: %w", owner, repo, err)
	}
	version, err := semver.ParseTolerant(rel.GetTagName())
	if err != nil {
		return File{}, fmt.Errorf("%s/%s release tag %q: %w", owner, repo, rel.GetTagName(), err)
	}
	if version.LT(minVersion) {
		return File{}, fmt.Errorf("%s/%s release %s is older than %s", owner, repo, version, minVersion)
	}
	for _, a := range rel.Assets {
		if !assetNameRE.MatchString(a.GetName()) {
			continue
		}
		u := a.GetBrowserDownloadURL()
		if u == "" {
			return File{}, fmt.Errorf("%s does not have a download URL", a.GetName())
		}
		return File{URL: u, Name: localName, Version: version}, nil
	}
	return File{}, fmt.Errorf("release for %s not found at https://github.com/%s/%s/releases", assetName, owner, repo)
}

// Geckodriver returns the latest linux64 geckodriver release.
func (f *Fetcher) Geckodriver(ctx context.Context) (File, error) {
	return f.LatestRelease(ctx, "mozilla", "geckodriver", `geckodriver-.*linux64\.tar\.gz$`, "geckodriver.tar.gz", MinGeckodriver)
}

// ChromeDriver returns the chromedriver built alongside the given Chromium
// snapshot build. An empty build selects the latest snapshot.
func (f *Fetcher) ChromeDriver(ctx context.Context, build string) (File, error) {
	const (
		storageBktName = "chromium-browser-snapshots"
		prefixLinux64  = "Linux_x64"
		lastChangeFile = "Linux_x64/LAST_CHANGE"
		driverFilename = "chromedriver_linux64.zip"
	)
	gcsPath := fmt.Sprintf("gs://%s/", storageBktName)
	client, err := storage.NewClient(ctx, option.WithHTTPClient(f.client()))
	if err != nil {
		return File{}, fmt.Errorf("cannot create a storage client: %v", err)
	}
	defer client.Close()

	bkt := client.Bucket(storageBktName)
	if build == "" {
		r, err := bkt.Object(lastChangeFile).NewReader(ctx)
		if err != nil {
			return File{}, fmt.Errorf("cannot create a reader for %s%s: %v", gcsPath, lastChangeFile, err)
		}
		defer r.Close()
		data, err := io.ReadAll(r)
		if err != nil {
			return File{}, fmt.Errorf("cannot read from %s%s: %v", gcsPath, lastChangeFile, err)
		}
		build = strings.TrimSpace(string(data))
	}

	pkg := path.Join(prefixLinux64, build, driverFilename)
	attrs, err := bkt.Object(pkg).Attrs(ctx)
	if err != nil {
		return File{}, fmt.Errorf("cannot get the chromedriver package %s%s attrs: %v", gcsPath, pkg, err)
	}
	return File{
		URL:      attrs.MediaLink,
		Name:     "chromedriver.zip",
		Hash:     hex.EncodeToString(attrs.MD5),
		HashType: "md5",
		Rename:   []string{"chromedriver_linux64/chromedriver", "chromedriver"},
	}, nil
}

// Download fetches file into directory unless a copy with the expected hash
// is already there, then unpacks it.
func (f *Fetcher) Download(ctx context.Context, file File, directory string) error {
	if file.Hash != "" && fileSameHash(file, directory) {
		glog.Infof("Skipping file %q which has already been downloaded.", file.Name)
	} else {
		glog.Infof("Downloading %q from %q", file.Name, file.URL)
		if err := f.downloadFile(ctx, file, directory); err != nil {
			return err
		}
	}

	if err := unpack(file, directory); err != nil {
		return err
	}

	if rename := file.Rename; len(rename) == 2 {
		from := filepath.Join(directory, rename[0])
		to := filepath.Join(directory, rename[1])
		glog.Infof("Renaming %q to %q", from, to)
		os.RemoveAll(to) // Ignore error.
		if err := os.Rename(from, to); err != nil {
			glog.Warningf("Error renaming %q to %q: %v", from, to, err)
		}
	}
	return nil
}

// DownloadAll downloads files into directory in parallel.
func (f *Fetcher) DownloadAll(ctx context.Context, directory string, files []File) error {
	if directory != "" {
		if err := os.MkdirAll(directory, 0755); err != nil {
			return fmt.Errorf("creating %q: %w", directory, err)
		}
	}
	g, ctx := errgroup.WithContext(ctx)
	for _, file := range files {
		file := file
		g.Go(func() error {
			if err := f.Download(ctx, file, directory); err != nil {
				return fmt.Errorf("error handling %s: %w", file.Name, err)
			}
			return nil
		})
	}
	return g.Wait()
}

func newHash(hashType string) hash.Hash {
	switch strings.ToLower(hashType) {
	case "md5":
		return md5.New()
	case "sha1":
		return sha1.New()
	default:
		return sha256.New()
	}
}

func (f *Fetcher) downloadFile(ctx context.Context, file File, directory string) (err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.URL, nil)
	if err != nil {
		return fmt.Errorf("%s: bad URL %q: %v", file.Name, file.URL, err)
	}
	resp, err := f.client().Do(req)
	if err != nil {
		return fmt.Errorf("%s: error downloading %q: %w", file.Name, file.URL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: error downloading %q: %s", file.Name, file.URL, resp.Status)
	}

	p := file.Path(directory)
	out, err := os.Create(p)
	if err != nil {
		return fmt.Errorf("error creating %q: %v", p, err)
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("error closing %q: %v", p, closeErr)
		}
		if err != nil {
			os.Remove(p) // Ignore error.
		}
	}()

	if file.Hash == "" {
		if _, err := io.Copy(out, resp.Body); err != nil {
			return fmt.Errorf("%s: error downloading %q: %v", file.Name, file.URL, err)
		}
		return nil
	}
	h := newHash(file.HashType)
	if _, err := io.Copy(io.MultiWriter(out, h), resp.Body); err != nil {
		return fmt.Errorf("%s: error downloading %q: %v", file.Name, file.URL, err)
	}
	if sum := hex.EncodeToString(h.Sum(nil)); sum != file.Hash {
		return fmt.Errorf("%s: got %s hash %q, want %q", file.Name, file.HashType, sum, file.Hash)
	}
	return nil
}

func fileSameHash(file File, directory string) bool {
	f, err := os.Open(file.Path(directory))
	if err != nil {
		return false
	}
	defer f.Close()

	h := newHash(file.HashType)
	if _, err := io.Copy(h, f); err != nil {
		return false
	}
	sum := hex.EncodeToString(h.Sum(nil))
	if sum != file.Hash {
		glog.Warningf("File %q: got hash %q, expect hash %q", file.Name, sum, file.Hash)
		return false
	}
	return true
}

func unpack(file File, directory string) error {
	dir := "."
	if directory != "" {
		dir = directory
	}

	var cmd []string
	switch path.Ext(file.Name) {
	case ".zip":
		cmd = []string{"unzip", "-d", dir, "-o", file.Path(directory)}
	case ".gz":
		cmd = []string{"tar", "-xzf", file.Path(directory), "-C", dir}
	case ".bz2":
		cmd = []string{"tar", "-xjf", file.Path(directory), "-C", dir}
	default:
		return nil
	}

	glog.Infof("Unzipping %q", file.Path(directory))
	if err := exec.Command(cmd[0], cmd[1:]...).Run(); err != nil {
		return fmt.Errorf("error unzipping %q: %v", file.Name, err)
	}
	return nil
}
