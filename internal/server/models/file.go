// Package models defines the gateway's data model shared by services,
// repositories and transports.
package models

import "time"

// RegistrationStatus tracks whether the access oracle has accepted the
// time-lock for a stored object.
type RegistrationStatus string

const (
	// StatusPending means the object and key are in custody but oracle
	// registration has not been confirmed.
	StatusPending RegistrationStatus = "pending"
	// StatusRegistered means the oracle accepted the declared duration.
	StatusRegistered RegistrationStatus = "registered"
)

// EncryptedObject describes one uploaded file. The sealed bytes live in the
// blob repository under Handle; this record holds what the gateway needs to
// present them again.
type EncryptedObject struct {
	// Handle is the blob repository's identifier for the ciphertext.
	Handle string
	// FileName is the original client-supplied file name.
	FileName string
	// ContentType is the declared MIME type.
	ContentType string
	// Size is the plaintext length in bytes.
	Size int64
	// Duration is the access window declared at upload.
	Duration time.Duration
	// CreatedAt is the upload time; the window ends at CreatedAt+Duration.
	CreatedAt time.Time
	// Status is the oracle registration state.
	Status RegistrationStatus
}

// ExpiresAt is the end of the declared access window.
func (o *EncryptedObject) ExpiresAt() time.Time {
	return o.CreatedAt.Add(o.Duration)
}

// UploadRequest is the input of an upload.
type UploadRequest struct {
	Data        []byte
	FileName    string
	ContentType string
	Duration    time.Duration
}

// UploadReceipt is returned to the uploader.
type UploadReceipt struct {
	Handle    string
	ExpiresAt time.Time
}

// Content is decrypted file content ready for presentation.
type Content struct {
	Handle      string
	FileName    string
	ContentType string
	Data        []byte
}
