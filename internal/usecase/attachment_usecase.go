package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"truetickets/internal/usecase/interfaces"
	"truetickets/pkg"
)

var ErrInvalidImageData = errors.New("invalid image data")

const attachmentIDLength = 4

// IAttachmentUseCase stores a client-uploaded image and records its
// URL on the ticket.
type IAttachmentUseCase interface {
	UploadAttachment(ctx context.Context, ticketNumber int64, imageData string) (string, error)
}

type AttachmentUseCase struct {
	blob       interfaces.IBlobStorage
	ticketRepo interfaces.ITicketRepository
}

var _ IAttachmentUseCase = (*AttachmentUseCase)(nil)

func NewAttachmentUseCase(blob interfaces.IBlobStorage, ticketRepo interfaces.ITicketRepository) *AttachmentUseCase {
	return &AttachmentUseCase{blob: blob, ticketRepo: ticketRepo}
}

// UploadAttachment accepts either a data URL
// ("data:image/png;base64,....") or raw base64.
func (u *AttachmentUseCase) UploadAttachment(ctx context.Context, ticketNumber int64, imageData string) (string, error) {
	contentType := "application/octet-stream"
	if strings.HasPrefix(imageData, "data:") {
		meta, payload, ok := strings.Cut(imageData, ",")
		if !ok {
			return "", ErrInvalidImageData
		}
		contentType = strings.TrimSuffix(strings.TrimPrefix(meta, "data:"), ";base64")
		imageData = payload
	}

	data, err := base64.StdEncoding.DecodeString(imageData)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidImageData, err)
	}

	key := fmt.Sprintf("attachments/%d/%d_%s", ticketNumber, time.Now().Unix(), pkg.ShortID(attachmentIDLength))
	url, err := u.blob.Upload(ctx, key, data, contentType)
	if err != nil {
		log.Printf("[attachment][usecase] upload failed ticket_number=%d err=%v", ticketNumber, err)
		return "", err
	}

	if err := u.ticketRepo.AppendAttachment(ctx, ticketNumber, url); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return "", ErrTicketNotFound
		}
		return "", err
	}
	log.Printf("[attachment][usecase] stored attachment ticket_number=%d key=%s", ticketNumber, key)
	return url, nil
}
