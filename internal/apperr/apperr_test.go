package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validation("이름을 입력하세요")))
	assert.Equal(t, KindDuplicate, KindOf(Duplicate("이미 등록된 이름입니다")))
	assert.Equal(t, KindStorage, KindOf(Storage("read failed", errors.New("boom"))))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("saving day: %w", Duplicate("dup"))
	assert.True(t, IsKind(err, KindDuplicate))
	assert.False(t, IsKind(err, KindValidation))
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "이름을 입력하세요", Validation("이름을 입력하세요").Error())

	wrapped := Storage("write failed", errors.New("disk full"))
	assert.Equal(t, "write failed: disk full", wrapped.Error())
	assert.EqualError(t, errors.Unwrap(wrapped), "disk full")
}
