// Package drive provides a client for interacting with the Google Drive API.
//
// The client covers the two operations clip2drive needs:
//   - Uploading a Markdown note into the destination folder
//   - Granting anyone-with-the-link read access to the uploaded file
//
// OAuth Authentication:
// The client is built on an authenticated HTTP client from the google
// package. The OAuth scope is drive.file, limiting access to files this
// tool has created.
//
// Example usage:
//
//	client, err := drive.NewClient(ctx, httpClient)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	file, err := client.UploadFile(ctx, "Note-....md", strings.NewReader(content), &drive.UploadOptions{
//	    ParentFolders: []string{folderID},
//	    MimeType:      drive.MarkdownMimeType,
//	})
package drive
