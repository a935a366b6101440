// Copyright 2024 The PackMySeal Authors. All rights reserved.

// Package registry implements the fixed HTTP protocol surface of the pms
// registry. Every method issues a single synchronous request bounded by a
// per-operation timeout budget, nothing is retried.
package registry

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"packmyseal.io/pms/pkg/constants"
	"packmyseal.io/pms/pkg/errors"
	"packmyseal.io/pms/pkg/settings"
)

// StatusError is the generic non-2xx response, carrying the status and
// the response body.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		return fmt.Sprintf("%s: status %d", errors.RegistryError.Error(), e.Status)
	}
	return fmt.Sprintf("%s: status %d: %s", errors.RegistryError.Error(), e.Status, body)
}

// Unwrap maps 404 to errors.NotFound and everything else to
// errors.RegistryError so callers can branch on kind.
func (e *StatusError) Unwrap() error {
	if e.Status == http.StatusNotFound {
		return errors.NotFound
	}
	return errors.RegistryError
}

// Client is the pms registry protocol client. One http.Client per timeout
// class: short budgets for auth and metadata lookups, long ones for
// archive transfer.
type Client struct {
	baseURL string

	authClient     *http.Client
	metaClient     *http.Client
	downloadClient *http.Client
	uploadClient   *http.Client
}

// NewClient returns a registry client for the configured registry.
func NewClient(settings *settings.Settings) *Client {
	return &Client{
		baseURL:        strings.TrimRight(settings.Registry, "/"),
		authClient:     &http.Client{Timeout: settings.AuthTimeout()},
		metaClient:     &http.Client{Timeout: settings.MetadataTimeout()},
		downloadClient: &http.Client{Timeout: settings.DownloadTimeout()},
		uploadClient:   &http.Client{Timeout: settings.UploadTimeout()},
	}
}

// BaseURL returns the registry base url.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) endpoint(segments ...string) string {
	escaped := make([]string, 0, len(segments))
	for _, segment := range segments {
		escaped = append(escaped, url.PathEscape(segment))
	}
	return c.baseURL + "/" + strings.Join(escaped, "/")
}

// doJSON issues the request and decodes a 2xx JSON response into 'out'.
func doJSON(client *http.Client, req *http.Request, out any) error {
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s", errors.RegistryError, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %s", errors.RegistryError, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Status: resp.StatusCode, Body: string(body)}
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("%w: invalid response body: %s", errors.RegistryError, err)
		}
	}
	return nil
}

func jsonRequest(method, url string, payload any) (*http.Request, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func bearer(req *http.Request, token string) {
	req.Header.Set("Authorization", "Bearer "+token)
}

// Register creates a new account on the registry.
func (c *Client) Register(username, password string) error {
	req, err := jsonRequest(http.MethodPost, c.endpoint("register"), map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return err
	}
	return doJSON(c.metaClient, req, nil)
}

// Login exchanges the username and password for an access token and a
// refresh token.
func (c *Client) Login(username, password string) (token, refreshToken string, err error) {
	req, err := jsonRequest(http.MethodPost, c.endpoint("login"), map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return "", "", err
	}

	result := struct {
		Token        string `json:"token"`
		RefreshToken string `json:"refresh_token"`
	}{}
	if err := doJSON(c.metaClient, req, &result); err != nil {
		return "", "", err
	}
	return result.Token, result.RefreshToken, nil
}

// CheckAlive reports whether the access token is still valid. Transport
// and protocol failures yield an error, the caller decides whether that
// counts as dead.
func (c *Client) CheckAlive(token string) (bool, error) {
	req, err := jsonRequest(http.MethodGet, c.endpoint("check"), nil)
	if err != nil {
		return false, err
	}
	bearer(req, token)

	result := struct {
		Alive bool `json:"alive"`
	}{}
	if err := doJSON(c.authClient, req, &result); err != nil {
		return false, err
	}
	return result.Alive, nil
}

// Refresh mints a new access token using the refresh token as bearer
// credential.
func (c *Client) Refresh(refreshToken string) (string, error) {
	req, err := jsonRequest(http.MethodGet, c.endpoint("refresh"), nil)
	if err != nil {
		return "", err
	}
	bearer(req, refreshToken)

	result := struct {
		Token string `json:"token"`
	}{}
	if err := doJSON(c.authClient, req, &result); err != nil {
		return "", fmt.Errorf("%w: %s", errors.RefreshFailed, err)
	}
	if result.Token == "" {
		return "", errors.RefreshProtocolError
	}
	return result.Token, nil
}

// Whoami returns the username of the access token's owner.
func (c *Client) Whoami(token string) (string, error) {
	req, err := jsonRequest(http.MethodGet, c.endpoint("whoami"), nil)
	if err != nil {
		return "", err
	}
	bearer(req, token)

	result := struct {
		Username string `json:"username"`
	}{}
	if err := doJSON(c.authClient, req, &result); err != nil {
		return "", err
	}
	return result.Username, nil
}

// ListVersions returns the published versions of a module in the order
// the registry reports them.
func (c *Client) ListVersions(moduleName string) ([]string, error) {
	req, err := jsonRequest(http.MethodGet, c.endpoint("modules", moduleName, "versions"), nil)
	if err != nil {
		return nil, err
	}

	result := struct {
		Versions []string `json:"versions"`
	}{}
	if err := doJSON(c.metaClient, req, &result); err != nil {
		return nil, err
	}
	return result.Versions, nil
}

// LatestVersion returns the registry's current latest version of a module.
// The response body is the raw version string.
func (c *Client) LatestVersion(moduleName string) (string, error) {
	req, err := jsonRequest(http.MethodGet, c.endpoint("modules", moduleName, "versions", "latest"), nil)
	if err != nil {
		return "", err
	}

	resp, err := c.metaClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %s", errors.RegistryError, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %s", errors.RegistryError, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &StatusError{Status: resp.StatusCode, Body: string(body)}
	}

	version := strings.TrimSpace(string(body))
	if version == "" {
		return "", fmt.Errorf("%w: empty latest version", errors.RegistryError)
	}
	return version, nil
}

// Download streams the module archive into 'dest'. The version query is
// omitted entirely when the latest sentinel is requested, the registry
// defaults to latest in that case.
func (c *Client) Download(moduleName, version string, dest io.Writer) error {
	endpoint := c.endpoint("modules", moduleName)
	if version != "" && version != constants.LatestVersion {
		endpoint += "?version=" + url.QueryEscape(version)
	}

	req, err := jsonRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := c.downloadClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s", errors.RegistryError, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{Status: resp.StatusCode, Body: string(body)}
	}

	if _, err := io.Copy(dest, resp.Body); err != nil {
		return fmt.Errorf("%w: %s", errors.RegistryError, err)
	}
	return nil
}

// Upload publishes a module archive as multipart form data with the file
// field named '{name}@{version}.zip'.
func (c *Client) Upload(token, moduleName, version, zipPath string) error {
	file, err := os.Open(zipPath)
	if err != nil {
		return err
	}
	defer file.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	filename := fmt.Sprintf("%s@%s%s", moduleName, version, constants.ZipPathSuffix)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, file); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, c.endpoint("modules", "upload"), &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	bearer(req, token)

	return doJSON(c.uploadClient, req, nil)
}

// Delete removes a version of a module, or the whole module when
// 'version' is empty. Returns the registry's message.
func (c *Client) Delete(token, moduleName, version string) (string, error) {
	payload := map[string]string{}
	if version != "" {
		payload["version"] = version
	}

	req, err := jsonRequest(http.MethodPost, c.endpoint("modules", moduleName, "delete"), payload)
	if err != nil {
		return "", err
	}
	bearer(req, token)

	result := struct {
		Msg string `json:"msg"`
	}{}
	if err := doJSON(c.metaClient, req, &result); err != nil {
		return "", err
	}
	return result.Msg, nil
}

// WriteToTempFile streams the module archive into a fresh temporary zip
// file and returns its path. The caller removes the file when done.
func (c *Client) WriteToTempFile(moduleName, version string) (string, error) {
	tmp, err := os.CreateTemp("", "pms-*"+constants.ZipPathSuffix)
	if err != nil {
		return "", err
	}

	if err := c.Download(moduleName, version, tmp); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", err
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return filepath.Clean(tmp.Name()), nil
}
