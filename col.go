// Copyright 2026 go-logsumexp Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logsumexp

import "github.com/ajroetker/go-logsumexp/hwy"

// colLogSum reduces each column of a column-major matrix independently.
// Column j occupies m[j*nRows : (j+1)*nRows]; the row count is the column
// stride. Columns share no state, so an outer caller may safely split them
// across goroutines; this package does not do so itself.
func colLogSum[T hwy.Floats](m []T, nRows, nCols, accumulators int) []T {
	result := make([]T, nCols)
	for j := 0; j < nCols; j++ {
		result[j] = logSumN(m[j*nRows:(j+1)*nRows], accumulators)
	}
	return result
}
