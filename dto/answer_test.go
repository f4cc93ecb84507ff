package dto

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/require"
)

func TestChoiceIDListAcceptsScalarAndList(t *testing.T) {
	var req CreateChoiceAnswerRequest
	require.NoError(t, sonic.Unmarshal([]byte(`{"question_id":1,"choices":[3,5]}`), &req))
	require.Equal(t, ChoiceIDList{3, 5}, req.Choices)

	req = CreateChoiceAnswerRequest{}
	require.NoError(t, sonic.Unmarshal([]byte(`{"question_id":1,"choices":7}`), &req))
	require.Equal(t, ChoiceIDList{7}, req.Choices)

	req = CreateChoiceAnswerRequest{}
	require.NoError(t, sonic.Unmarshal([]byte(`{"question_id":1,"choices":null}`), &req))
	require.Nil(t, req.Choices)

	require.Error(t, sonic.Unmarshal([]byte(`{"question_id":1,"choices":"nope"}`), &req))
}
