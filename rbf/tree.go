package rbf

import (
	"container/heap"

	"gonum.org/v1/gonum/spatial/kdtree"

	"github.com/hopi-project/scatter/points"
)

// medianSamples is the number of random samples used when choosing kd-tree
// partition pivots.
const medianSamples = 100

// treePoint is a source point inside the kd-tree. idx is the point's row in
// the source Set; query points use idx = -1.
type treePoint struct {
	coords []float64
	idx    int
}

func (p treePoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	return p.coords[d] - c.(treePoint).coords[d]
}

func (p treePoint) Dims() int { return len(p.coords) }

// Distance returns the squared Euclidean distance between two points.
func (p treePoint) Distance(c kdtree.Comparable) float64 {
	q := c.(treePoint)
	sum := 0.0
	for d := range p.coords {
		dx := p.coords[d] - q.coords[d]
		sum += dx * dx
	}
	return sum
}

// treePoints satisfies kdtree.Interface.
type treePoints []treePoint

func (p treePoints) Index(i int) kdtree.Comparable         { return p[i] }
func (p treePoints) Len() int                              { return len(p) }
func (p treePoints) Slice(start, end int) kdtree.Interface { return p[start:end] }

func (p treePoints) Pivot(d kdtree.Dim) int {
	plane := treePlane{points: p, dim: d}
	return kdtree.Partition(plane, kdtree.MedianOfRandoms(plane, medianSamples))
}

// treePlane implements sort.Interface and kdtree.SortSlicer along one
// dimension of a treePoints.
type treePlane struct {
	points treePoints
	dim    kdtree.Dim
}

func (p treePlane) Len() int { return len(p.points) }

func (p treePlane) Less(i, j int) bool {
	return p.points[i].coords[p.dim] < p.points[j].coords[p.dim]
}

func (p treePlane) Swap(i, j int) {
	p.points[i], p.points[j] = p.points[j], p.points[i]
}

func (p treePlane) Slice(start, end int) kdtree.SortSlicer {
	return treePlane{points: p.points[start:end], dim: p.dim}
}

// newTree builds a kd-tree over the rows of src for nearest-neighbor
// queries. The tree shares the Set's coordinate buffer.
func newTree(src *points.Set) *kdtree.Tree {
	pts := make(treePoints, src.Len())
	for i := range pts {
		pts[i] = treePoint{coords: src.At(i), idx: i}
	}
	return kdtree.New(pts, false)
}

// nearest returns the row indices of the k source points closest to p,
// in no particular order.
func nearest(tree *kdtree.Tree, p []float64, k int) []int {
	keeper := kdtree.NewNKeeper(k)
	tree.NearestSet(keeper, treePoint{coords: p, idx: -1})

	idxs := make([]int, 0, k)
	for keeper.Len() > 0 {
		item := heap.Pop(keeper).(kdtree.ComparableDist)
		if item.Comparable == nil {
			continue
		}
		idxs = append(idxs, item.Comparable.(treePoint).idx)
	}
	return idxs
}
