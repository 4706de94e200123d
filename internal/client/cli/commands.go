package cli

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/dmitrijs2005/timevault/internal/filex"
	"github.com/dmitrijs2005/timevault/internal/server/auth"
	"github.com/dmitrijs2005/timevault/internal/shared"
)

func (a *App) Upload(ctx context.Context, path, secondsArg string) error {
	seconds, err := strconv.ParseInt(secondsArg, 10, 64)
	if err != nil || seconds <= 0 {
		return fmt.Errorf("%w: duration must be a positive number of seconds", ErrUsage)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	resp, err := a.client.Upload(ctx, filepath.Base(path), contentType, data, seconds)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "handle:  %s\nexpires: %s\n", resp.Handle, resp.GetExpiresAt().AsTime().Local().Format(time.RFC1123))
	return nil
}

func (a *App) Download(ctx context.Context, handle string) error {
	content, err := a.client.Download(ctx, handle)
	if err != nil {
		return err
	}
	return a.save(handle, content.FileName, content.Data)
}

func (a *App) Token(ctx context.Context, handle string) error {
	tok, err := a.client.IssueViewToken(ctx, handle)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "token:   %s\nexpires: %s\n", tok.Token, tok.GetExpiresAt().AsTime().Local().Format(time.RFC1123))
	return nil
}

func (a *App) View(ctx context.Context, handle, token string) error {
	content, err := a.client.View(ctx, handle, token)
	if err != nil {
		return err
	}
	return a.save(handle, content.FileName, content.Data)
}

func (a *App) Fetch(ctx context.Context, url string) error {
	content, err := fetchContent(ctx, a.http, url)
	if err != nil {
		return err
	}
	return a.save("download", content.FileName, content.Data)
}

func (a *App) Evict(ctx context.Context, handle string) error {
	token, err := a.adminToken()
	if err != nil {
		return err
	}

	if err := a.client.Evict(ctx, handle, token); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "evicted %s\n", handle)
	return nil
}

func (a *App) Reconcile(ctx context.Context) error {
	token, err := a.adminToken()
	if err != nil {
		return err
	}

	resp, err := a.client.Reconcile(ctx, token)
	if err != nil {
		return err
	}
	if !resp.Ran {
		fmt.Fprintln(a.out, "a reconciliation pass is already running")
		return nil
	}

	fmt.Fprintf(a.out, "registered: %d\nexpired:    %d\nfailed:     %d\n", resp.Registered, resp.Expired, resp.Failed)
	return nil
}

// adminToken prompts for the gateway's signing secret and mints a
// short-lived admin JWT with it.
func (a *App) adminToken() (string, error) {
	secret, err := GetPassword(a.out, "Admin secret: ")
	if err != nil {
		return "", err
	}
	defer shared.WipeByteArray(secret)

	return auth.GenerateToken(a.config.AdminSubject, auth.RoleAdmin, secret, a.config.AdminTokenValidity)
}

// save writes data under the download directory. Only the base of the
// server-supplied name is used.
func (a *App) save(fallback, fileName string, data []byte) error {
	dir, err := filex.EnsurePrivateDir(a.config.DownloadDir)
	if err != nil {
		return err
	}

	name := filepath.Base(fileName)
	if fileName == "" || name == "." || name == string(filepath.Separator) || name == ".." {
		name = fallback
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "saved %d bytes to %s\n", len(data), path)
	return nil
}
