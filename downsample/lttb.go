// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package downsample

import (
	"chartcore/chartval"
	"math"
)

// LTTB reduces points to at most threshold points using Largest-Triangle-Three-Buckets,
// keeping the visual shape of the series. The first and last point are always kept.
// Points must be sorted by X. The result never aliases the input.
func LTTB(points []chartval.Point2D, threshold int) []chartval.Point2D {
	n := len(points)
	if threshold <= 0 || n == 0 {
		return []chartval.Point2D{}
	}
	if threshold >= n || n <= 2 {
		return append([]chartval.Point2D(nil), points...)
	}
	if threshold == 1 {
		return []chartval.Point2D{points[0]}
	}

	bucketSize := float64(n-2) / float64(threshold-2)
	bucketIndex := func(i int) int {
		return min(int(math.Floor(1+float64(i)*bucketSize)), n-1)
	}

	sampled := make([]chartval.Point2D, 0, threshold)
	sampled = append(sampled, points[0])
	// Index of the point selected from the previous bucket.
	a := 0

	for i := 0; i < threshold-2; i++ {
		start := int(math.Floor(1 + float64(i)*bucketSize))
		end := bucketIndex(i + 1)

		// Average of the next bucket. An empty range falls back to the boundary point.
		avg, ok := average(points[max(end, 1):max(bucketIndex(i+2), max(end, 1)+1)])
		if !ok {
			avg = points[end]
		}

		// Select the point of the current bucket that forms the largest triangle
		// with the previous selection and the next bucket average.
		pa := points[a]
		maxArea := -1.0
		maxIndex := start
		for k := start; k < max(end, start+1); k++ {
			area := math.Abs((pa.X-points[k].X)*(avg.Y-pa.Y) - (pa.X-avg.X)*(points[k].Y-pa.Y))
			// First index wins on equal areas.
			if area > maxArea {
				maxArea = area
				maxIndex = k
			}
		}
		sampled = append(sampled, points[maxIndex])
		a = maxIndex
	}

	sampled = append(sampled, points[n-1])
	return sampled
}

func average(points []chartval.Point2D) (c chartval.Point2D, ok bool) {
	if len(points) == 0 {
		return
	}
	for _, p := range points {
		c.X += p.X
		c.Y += p.Y
	}
	length := float64(len(points))
	c.X, c.Y = c.X/length, c.Y/length
	return c, true
}
