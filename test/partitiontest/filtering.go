// Copyright (C) 2019-2025 Algorand, Inc.
// This file is part of go-algorand
//
// go-algorand is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-algorand is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-algorand.  If not, see <https://www.gnu.org/licenses/>.

// Package partitiontest splits a test run across CI workers.
package partitiontest

import (
	"hash/fnv"
	"os"
	"runtime"
	"strconv"
	"testing"
)

const (
	totalEnv = "PARTITION_TOTAL"
	idEnv    = "PARTITION_ID"
)

// PartitionTest checks if the current partition should run this test, and skips it if not.
// Without PARTITION_TOTAL and PARTITION_ID in the environment every test runs.
func PartitionTest(t testing.TB) {
	partitions, partitionID, ok := partitionFromEnv()
	if !ok {
		return
	}
	_, file, _, _ := runtime.Caller(1) // get filename of caller to PartitionTest
	idx := assignedPartition(file, t.Name(), partitions)
	if idx != uint64(partitionID) {
		t.Skipf("skipping due to partitioning, assigned to partition %d", idx)
	}
}

func partitionFromEnv() (partitions int, partitionID int, ok bool) {
	pt, found := os.LookupEnv(totalEnv)
	if !found {
		return 0, 0, false
	}
	partitions, err := strconv.Atoi(pt)
	if err != nil || partitions <= 0 {
		return 0, 0, false
	}
	partitionID, err = strconv.Atoi(os.Getenv(idEnv))
	if err != nil {
		return 0, 0, false
	}
	return partitions, partitionID, true
}

func assignedPartition(file, name string, partitions int) uint64 {
	return stringToUint64(file+":"+name) % uint64(partitions)
}

func stringToUint64(str string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(str))
	return h.Sum64()
}
