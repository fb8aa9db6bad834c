package uploader

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/P0RTNOY/IronMind/lib/myerrors"
	"github.com/P0RTNOY/IronMind/lib/myhttpclient"
	"github.com/P0RTNOY/IronMind/services/ironapi"
)

func TestUpload(t *testing.T) {

	t.Run("Signs then puts the payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, sut, api, sender := setupUploader(ctrl)

		// given
		api.EXPECT().SignUpload(c, "plan_pdf", "plan.pdf", "application/pdf").
			Return(ironapi.UploadSign{
				UploadURL:  "https://storage.example/upload?sig=abc",
				PublicURL:  "https://cdn.example/plans/plan.pdf",
				ObjectPath: "plans/plan.pdf",
			}, nil)
		sender.EXPECT().Send(c, http.MethodPut, "https://storage.example/upload?sig=abc",
			map[string]string{"Content-Type": "application/pdf"}, []byte("pdf-bytes")).
			Return(http.StatusOK, nil, nil)

		// when
		sign, err := sut.Upload(c, "plan_pdf", "plan.pdf", "application/pdf", []byte("pdf-bytes"))

		// then
		assert.NoError(t, err)
		assert.Equal(t, "https://cdn.example/plans/plan.pdf", sign.PublicURL)
	})

	t.Run("Sign failure aborts before any upload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, sut, api, _ := setupUploader(ctrl)

		// given: no Send expected
		api.EXPECT().SignUpload(c, "plan_pdf", "plan.pdf", "application/pdf").
			Return(ironapi.UploadSign{}, myerrors.NewForbiddenError(fmt.Errorf("not an admin")))

		// when
		_, err := sut.Upload(c, "plan_pdf", "plan.pdf", "application/pdf", []byte("pdf-bytes"))

		// then
		assert.Error(t, err)
	})

	t.Run("Rejected put surfaces the storage status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, sut, api, sender := setupUploader(ctrl)

		// given
		api.EXPECT().SignUpload(c, "plan_pdf", "plan.pdf", "application/pdf").
			Return(ironapi.UploadSign{UploadURL: "https://storage.example/upload"}, nil)
		sender.EXPECT().Send(c, http.MethodPut, "https://storage.example/upload", gomock.Any(), gomock.Any()).
			Return(http.StatusForbidden, nil, nil)

		// when
		_, err := sut.Upload(c, "plan_pdf", "plan.pdf", "application/pdf", []byte("pdf-bytes"))

		// then
		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, myerrors.GetHTTPStatus(err))
	})
}

func setupUploader(ctrl *gomock.Controller) (context.Context, Uploader, *ironapi.MockAdminAPI, *myhttpclient.MockHTTPSender) {
	c := context.TODO()
	api := ironapi.NewMockAdminAPI(ctrl)
	sender := myhttpclient.NewMockHTTPSender(ctrl)

	return c, New(api, sender), api, sender
}
