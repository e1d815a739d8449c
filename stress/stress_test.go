// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stress_test

import (
	"context"
	"io/ioutil"
	"math/rand"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avlset/fault"
	"github.com/bitmark-inc/avlset/stress"
	"github.com/bitmark-inc/avlset/stress/mocks"
)

const logCategory = "stress"

func TestMain(m *testing.M) {
	dir, err := ioutil.TempDir("", "stress-test")
	if nil != err {
		panic(err)
	}

	logging := logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	rc := m.Run()

	logger.Finalise()
	os.RemoveAll(dir)
	os.Exit(rc)
}

func TestNewRejectsBadConfiguration(t *testing.T) {
	log := logger.New(logCategory)
	testCases := []struct {
		configuration stress.Configuration
		err           error
	}{
		{stress.Configuration{Runs: 0, Keys: 10, Range: 100}, fault.ErrInvalidCount},
		{stress.Configuration{Runs: 1, Keys: -1, Range: 100}, fault.ErrInvalidCount},
		{stress.Configuration{Runs: 1, Keys: 10, Range: 1}, fault.ErrInvalidRange},
	}
	for i, tc := range testCases {
		r, err := stress.New(tc.configuration, nil, log)
		assert.Nil(t, r, "%d", i)
		assert.Equal(t, tc.err, err, "%d", i)
	}

	_, err := stress.New(stress.Configuration{Runs: 1, Keys: 1, Range: 2}, nil, nil)
	assert.Equal(t, fault.ErrInvalidLoggerChannel, err)
}

func TestRunReportsEveryRun(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockReporter(ctl)

	configuration := stress.Configuration{
		Runs:  5,
		Keys:  900,
		Range: 20000,
		Seed:  42,
	}

	results := []stress.Result{}
	gomock.InOrder(
		m.EXPECT().Start(configuration).Times(1),
		m.EXPECT().Report(gomock.Any()).Do(func(r stress.Result) {
			results = append(results, r)
		}).Times(5),
		m.EXPECT().Finish(gomock.Any()).Do(func(s stress.Summary) {
			assert.Equal(t, 5, s.Runs)
			assert.Equal(t, 0, s.Failures)
		}).Times(1),
	)

	r, err := stress.New(configuration, m, logger.New(logCategory))
	require.NoError(t, err)

	summary, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, summary.Runs)
	assert.Equal(t, 0, summary.Failures)

	inserts := uint64(0)
	for i, result := range results {
		assert.Equal(t, i, result.Run)
		assert.NoError(t, result.Err)
		assert.True(t, result.Unique > 800 && result.Unique <= 900, "unique: %d", result.Unique)
		assert.Equal(t, (result.Unique+1)/2, result.Removed)
		assert.Equal(t, uint64(result.Unique), result.Stats.Inserts)
		assert.Equal(t, uint64(result.Unique), result.Stats.Deletes)
		// 1.44 log2(n) bound for an AVL tree of ~900 nodes
		assert.True(t, result.Height >= 9 && result.Height <= 14, "height: %d", result.Height)
		inserts += result.Stats.Inserts
	}
	assert.Equal(t, inserts, summary.Stats.Inserts)
	assert.NotZero(t, summary.Stats.Rotations())
}

func TestRunIsRepeatable(t *testing.T) {
	configuration := stress.Configuration{Runs: 3, Keys: 200, Range: 1000, Seed: 9}

	collect := func() []stress.Result {
		ctl := gomock.NewController(t)
		defer ctl.Finish()
		m := mocks.NewMockReporter(ctl)

		results := []stress.Result{}
		m.EXPECT().Start(gomock.Any())
		m.EXPECT().Report(gomock.Any()).Do(func(r stress.Result) {
			r.Duration = 0
			results = append(results, r)
		}).Times(3)
		m.EXPECT().Finish(gomock.Any())

		r, err := stress.New(configuration, m, logger.New(logCategory))
		require.NoError(t, err)
		_, err = r.Run(context.Background())
		require.NoError(t, err)
		return results
	}

	assert.Equal(t, collect(), collect())
}

func TestRunCancelled(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockReporter(ctl)

	m.EXPECT().Start(gomock.Any()).Times(1)
	m.EXPECT().Report(gomock.Any()).Times(0)
	m.EXPECT().Finish(gomock.Any()).Times(0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r, err := stress.New(stress.Configuration{Runs: 3, Keys: 10, Range: 100}, m, logger.New(logCategory))
	require.NoError(t, err)

	summary, err := r.Run(ctx)
	assert.Equal(t, context.Canceled, err)
	assert.Equal(t, 0, summary.Runs)
}

func TestKeysAreUniqueAndInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	keys := stress.Keys(rng, 2000, 50)

	assert.Len(t, keys, 49) // every value in [1, 50) is drawn with this many tries
	seen := make(map[int]struct{})
	for _, k := range keys {
		assert.True(t, k >= 1 && k < 50, "key: %d", k)
		_, ok := seen[int(k)]
		assert.False(t, ok, "duplicate: %d", k)
		seen[int(k)] = struct{}{}
	}
}
