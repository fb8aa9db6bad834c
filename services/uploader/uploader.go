package uploader

import (
	"context"
	"fmt"
	"net/http"

	"github.com/P0RTNOY/IronMind/lib/myerrors"
	"github.com/P0RTNOY/IronMind/lib/myhttpclient"
	"github.com/P0RTNOY/IronMind/lib/mylog"
	"github.com/P0RTNOY/IronMind/services/ironapi"
)

// Uploader pushes admin media to object storage in two steps: ask the API
// to sign an upload, then PUT the payload to the signed URL. A failing
// signature aborts before any byte is sent.
//
//go:generate mockgen -source=uploader.go -package uploader -destination uploader_mock.go Uploader
type Uploader interface {
	Upload(c context.Context, kind string, filename string, contentType string, payload []byte) (ironapi.UploadSign, error)
}

type uploader struct {
	api    ironapi.AdminAPI
	sender myhttpclient.HTTPSender
	logger mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func New(api ironapi.AdminAPI, sender myhttpclient.HTTPSender) Uploader {
	return &uploader{
		api:    api,
		sender: sender,
		logger: mylog.New("uploader"),
	}
}

func (u *uploader) Upload(c context.Context, kind string, filename string, contentType string, payload []byte) (ironapi.UploadSign, error) {
	sign, err := u.api.SignUpload(c, kind, filename, contentType)
	if err != nil {
		return ironapi.UploadSign{}, fmt.Errorf("error signing upload of %s: %s", filename, err)
	}

	status, _, err := u.sender.Send(c, http.MethodPut, sign.UploadURL, map[string]string{
		"Content-Type": contentType,
	}, payload)
	if err != nil {
		return ironapi.UploadSign{}, myerrors.NewUnavailableError(fmt.Errorf("error uploading %s: %s", filename, err))
	}
	if status >= http.StatusBadRequest {
		return ironapi.UploadSign{}, myerrors.NewErrorWithStatus(status, fmt.Errorf("upload of %s rejected with status %d", filename, status))
	}

	u.logger.Log(c, filename, mylog.SeverityInfo, "Uploaded %s (%d bytes) to %s", filename, len(payload), sign.ObjectPath)

	return sign, nil
}
