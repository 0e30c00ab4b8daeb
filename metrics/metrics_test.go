package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordMutation(t *testing.T) {
	before := testutil.ToFloat64(MutationCount.WithLabelValues("test_kind"))
	beforeEmails := testutil.ToFloat64(MutatedEmailCount.WithLabelValues("test_kind"))

	RecordMutation("test_kind", 3)
	RecordMutation("test_kind", 0)

	assert.Equal(t, before+2, testutil.ToFloat64(MutationCount.WithLabelValues("test_kind")))
	assert.Equal(t, beforeEmails+3, testutil.ToFloat64(MutatedEmailCount.WithLabelValues("test_kind")))
}

func TestRecordDBQuery(t *testing.T) {
	RecordDBQuery("test_op", time.Now(), nil)
	RecordDBQuery("test_op", time.Now(), errors.New("boom"))

	// one series per status
	assert.GreaterOrEqual(t, testutil.CollectAndCount(DBQueryDuration, "dataset_query_duration_seconds"), 2)
}
