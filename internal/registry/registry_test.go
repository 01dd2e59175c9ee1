package registry

import (
	"testing"

	"github.com/harborops/consign/internal/common"
	"github.com/harborops/consign/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func source(id, documentID string) *model.Source {
	return &model.Source{
		ID:         id,
		DocumentID: documentID,
		Materials: []model.MaterialRecord{
			{MaterialCode: "BCD-350WDL", Category: model.CategoryRefrigerator, Qty: 1, Remarks: documentID},
		},
	}
}

func TestRegisterRejectsDuplicateDocument(t *testing.T) {
	reg := New()

	require.NoError(t, reg.Register(source("s1", "DN111")))

	err := reg.Register(source("s2", "DN111"))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrDuplicateDocument)

	// Registry is unchanged: the duplicate contributed no rows.
	assert.Equal(t, 1, reg.Len())
	assert.Equal(t, "s1", reg.List()[0].ID)
}

func TestRegisterDuplicateIsCaseSensitive(t *testing.T) {
	reg := New()

	require.NoError(t, reg.Register(source("s1", "DN111")))
	assert.NoError(t, reg.Register(source("s2", "dn111")), "document ids compare case-sensitively as captured")
	assert.Equal(t, 2, reg.Len())
}

func TestRegisterAllPartialBatch(t *testing.T) {
	reg := New()
	require.NoError(t, reg.Register(source("s1", "DN111")))

	accepted, rejected := reg.RegisterAll([]*model.Source{
		source("s2", "DN222"),
		source("s3", "DN111"), // duplicate of a held source
		source("s4", "DN333"),
		source("s5", "DN222"), // duplicate within the batch
	})

	require.Len(t, accepted, 2)
	assert.Equal(t, "s2", accepted[0].ID)
	assert.Equal(t, "s4", accepted[1].ID)
	assert.Equal(t, []string{"DN111", "DN222"}, rejected)
	assert.Equal(t, 3, reg.Len())
}

func TestRegisterAllSkipsNilSources(t *testing.T) {
	reg := New()

	accepted, rejected := reg.RegisterAll([]*model.Source{
		nil,
		source("s1", "DN111"),
		nil,
	})

	// A nil entry is neither a registration nor a duplicate rejection.
	require.Len(t, accepted, 1)
	assert.Equal(t, "s1", accepted[0].ID)
	assert.Empty(t, rejected)
	assert.Equal(t, 1, reg.Len())
}

func TestListPreservesRegistrationOrder(t *testing.T) {
	reg := New()
	for _, doc := range []string{"DN3", "DN1", "DN2"} {
		require.NoError(t, reg.Register(source("id-"+doc, doc)))
	}

	var docs []string
	for _, s := range reg.List() {
		docs = append(docs, s.DocumentID)
	}
	assert.Equal(t, []string{"DN3", "DN1", "DN2"}, docs, "insertion order, not sorted order")
}

func TestRemove(t *testing.T) {
	reg := New()
	require.NoError(t, reg.Register(source("s1", "DN111")))
	require.NoError(t, reg.Register(source("s2", "DN222")))

	require.NoError(t, reg.Remove("s1"))
	assert.Equal(t, 1, reg.Len())

	// The freed document id can be registered again.
	assert.NoError(t, reg.Register(source("s3", "DN111")))

	err := reg.Remove("no-such-id")
	assert.ErrorIs(t, err, common.ErrUnknownSource)
}

func TestGet(t *testing.T) {
	reg := New()
	require.NoError(t, reg.Register(source("s1", "DN111")))

	got, err := reg.Get("s1")
	require.NoError(t, err)
	assert.Equal(t, "DN111", got.DocumentID)

	_, err = reg.Get("s2")
	assert.ErrorIs(t, err, common.ErrUnknownSource)
}

func TestListReturnsCopy(t *testing.T) {
	reg := New()
	require.NoError(t, reg.Register(source("s1", "DN111")))

	list := reg.List()
	list[0] = nil

	require.NotNil(t, reg.List()[0])
}
