package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/standup/internal/client/export"
	"github.com/dmitrijs2005/standup/internal/filex"
	"github.com/gosuri/uitable"
)

var errSignInRequired = errors.New("sign in to use this command")

// Export writes every entry to a CSV or Markdown file in the export
// directory. With "upload" a signed-in user also gets a download link.
func (a *App) Export(ctx context.Context, args []string) error {
	format := export.FormatCSV
	upload := false
	for _, arg := range args {
		switch arg {
		case export.FormatCSV, export.FormatMarkdown:
			format = arg
		case "upload":
			upload = true
		default:
			return usage("export [csv|md] [upload]")
		}
	}
	if upload && !a.isSignedIn() {
		return errSignInRequired
	}

	var buf bytes.Buffer
	var err error
	if format == export.FormatCSV {
		err = export.WriteCSV(&buf, a.entries.List(), a.loc)
	} else {
		err = export.WriteDocument(&buf, a.entries.List(), a.loc)
	}
	if err != nil {
		return err
	}

	dir, err := filex.EnsureSubdDir(a.config.ExportDir)
	if err != nil {
		return err
	}
	name := export.FileName(format, a.now().In(a.loc))
	path, err := filex.WriteFileAtomic(dir, name, buf.Bytes())
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Exported to", path)

	if !upload {
		return nil
	}
	link, err := a.uploader.Upload(ctx, a.userID(), name, export.ContentType(format), buf.Bytes())
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Download link:", link)
	return nil
}

// Exports lists the signed-in user's uploaded exports with fresh links.
func (a *App) Exports(ctx context.Context, _ []string) error {
	if !a.isSignedIn() {
		return errSignInRequired
	}
	files, err := a.exports.ListExports(ctx, a.userID(), 20)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintln(a.out, "No exports yet.")
		return nil
	}

	tbl := uitable.New()
	tbl.AddRow("CREATED", "FILE", "LINK")
	for _, f := range files {
		tbl.AddRow(f.CreatedAt.In(a.loc).Format("2006-01-02 15:04"), f.FileName, f.DownloadURL)
	}
	fmt.Fprintln(a.out, tbl)
	return nil
}

func (a *App) userID() string {
	if id := a.session.State().Identity; id != nil {
		return id.ID
	}
	return ""
}
