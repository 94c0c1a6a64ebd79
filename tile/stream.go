package tile

import "github.com/nocsim/nocsim/item"

// DependenceTemplate is one step of a tile's behavior: items that must be
// resident before the step can start, items to push to the output buffer
// on completion, items to drop from the input buffer on completion, and
// the simulated duration. ImageID fields on the template's items are
// placeholders, overwritten per pass by computationStream.
type DependenceTemplate struct {
	Wait    []item.DataItem
	Output  []item.DataItem
	Drop    []item.DataItem
	Latency float64
}

// Dependence is one fully-instantiated pass of a DependenceTemplate, with
// every item's ImageID rewritten to the pass index.
type Dependence struct {
	Wait    []item.DataItem
	Output  []item.DataItem
	Drop    []item.DataItem
	Latency float64
}

// computationStream lazily unrolls templates across image_num passes as a
// flat (imageID, stepIndex) index space, so a tile with a large image_num
// never materializes image_num copies of its dependence list. For a
// controlled exit tile (exitID != nil), every step's Output is replaced by
// a single control record carrying sampleList[image][exitID].
type computationStream struct {
	templates  []DependenceTemplate
	imageNum   int
	exitID     *int
	sampleList [][]bool
	controlLen int64
	tileID     int
}

func newComputationStream(templates []DependenceTemplate, imageNum int, exitID *int, sampleList [][]bool, controlLen int64, tileID int) *computationStream {
	return &computationStream{
		templates: templates, imageNum: imageNum,
		exitID: exitID, sampleList: sampleList,
		controlLen: controlLen, tileID: tileID,
	}
}

// total is the number of flat steps across every image pass.
func (s *computationStream) total() int { return s.imageNum * len(s.templates) }

// imageOf returns the image index a flat step index belongs to.
func (s *computationStream) imageOf(idx int) int { return idx / len(s.templates) }

// imageStart returns the flat index of image img's first step.
func (s *computationStream) imageStart(img int) int { return img * len(s.templates) }

// at materializes the dependence for flat index idx.
func (s *computationStream) at(idx int) Dependence {
	img := s.imageOf(idx)
	step := idx % len(s.templates)
	tmpl := s.templates[step]

	dep := Dependence{
		Wait:    rewriteImage(tmpl.Wait, img),
		Drop:    rewriteImage(tmpl.Drop, img),
		Latency: tmpl.Latency,
	}
	if s.exitID != nil {
		exitChoice := s.sampleList[img][*s.exitID]
		dep.Output = []item.DataItem{item.NewControl(img, exitChoice, s.controlLen, s.tileID)}
	} else {
		dep.Output = rewriteImage(tmpl.Output, img)
	}
	return dep
}

func rewriteImage(items []item.DataItem, img int) []item.DataItem {
	out := make([]item.DataItem, len(items))
	for i, it := range items {
		it.ImageID = img
		out[i] = it
	}
	return out
}
