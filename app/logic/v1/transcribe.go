package v1

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/gorlea-ink/gorlea/app/core"
	"github.com/gorlea-ink/gorlea/pkg/ai"
	"github.com/gorlea-ink/gorlea/pkg/errors"
	"github.com/gorlea-ink/gorlea/pkg/i18n"
	"github.com/gorlea-ink/gorlea/pkg/object-storage/s3"
	"github.com/gorlea-ink/gorlea/pkg/safe"
)

// TranscribeLogic turns dictated audio into entry text. When object
// storage is configured the raw audio is archived after transcription.
type TranscribeLogic struct {
	ctx  context.Context
	core *core.Core
	UserInfo
}

func NewTranscribeLogic(ctx context.Context, core *core.Core) *TranscribeLogic {
	return &TranscribeLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: SetupUserInfo(ctx, core),
	}
}

func (l *TranscribeLogic) Transcribe(filename string, audio io.Reader) (string, error) {
	raw, err := io.ReadAll(audio)
	if err != nil {
		return "", errors.New("TranscribeLogic.Transcribe.read", i18n.ERROR_INVALIDARGUMENT, err).Code(http.StatusBadRequest)
	}
	if len(raw) == 0 {
		return "", errors.New("TranscribeLogic.Transcribe.empty", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest)
	}

	timer := l.core.Metrics().TranscribeTimer()
	text, err := l.core.Srv().AI().Transcriber().Transcribe(l.ctx, filename, bytes.NewReader(raw))
	timer.ObserveDuration()
	if err != nil {
		if err == ai.ErrUnsupported {
			return "", errors.New("TranscribeLogic.Transcribe.unsupported", i18n.ERROR_UNSUPPORTED_FEATURE, err).Code(http.StatusNotImplemented)
		}
		l.core.Metrics().TranscribeErrorInc("model")
		return "", errors.New("TranscribeLogic.Transcribe.Transcriber", i18n.ERROR_TRANSCRIBE_FAILED, err)
	}

	l.archiveAudio(filename, raw)

	return text, nil
}

// archiveAudio is best effort, a storage failure never fails the request.
func (l *TranscribeLogic) archiveAudio(filename string, raw []byte) {
	fileStore := l.core.FileStore()
	if fileStore == nil {
		return
	}

	userID := l.GetUserInfo().User
	go safe.Run(func() {
		if err := fileStore.Upload(s3.AudioKey(userID, filename), bytes.NewReader(raw)); err != nil {
			l.core.Metrics().TranscribeErrorInc("archive")
		}
	})
}
