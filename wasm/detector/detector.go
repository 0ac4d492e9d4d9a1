package detector

import (
	"errors"

	pigo "github.com/esimov/pigo/core"
)

// perturbFact represents the perturbation factor used for pupils/eyes localization
const perturbFact = 63

// minQuality is the detection score under which a face is ignored.
const minQuality = 5.0

// Detector locates the viewer's face in webcam frames so it can act
// as a pointer for the page effects.
type Detector struct {
	faceClassifier   *pigo.Pigo
	puplocClassifier *pigo.PuplocCascade
}

// NewDetector initializes a new constructor function.
func NewDetector() *Detector {
	return &Detector{}
}

// Unpack unpacks the face and pupil cascade files.
func (d *Detector) Unpack(face, puploc []byte) error {
	var err error
	// Unpack the binary file. This will return the number of cascade trees,
	// the tree depth, the threshold and the prediction from tree's leaf nodes.
	d.faceClassifier, err = pigo.NewPigo().Unpack(face)
	if err != nil {
		return errors.New("error unpacking the facefinder cascade file")
	}
	d.puplocClassifier, err = pigo.NewPuplocCascade().UnpackCascade(puploc)
	if err != nil {
		return errors.New("error unpacking the puploc cascade file")
	}
	return nil
}

// Ready reports whether the cascades have been unpacked.
func (d *Detector) Ready() bool {
	return d.faceClassifier != nil && d.puplocClassifier != nil
}

// Gaze returns the point between the pupils of the best face found in a
// grayscale frame, falling back to the face centre. Coordinates are in
// frame pixels.
func (d *Detector) Gaze(gray []uint8, width, height int) (float64, float64, bool) {
	if !d.Ready() {
		return 0, 0, false
	}
	img := pigo.ImageParams{
		Pixels: gray,
		Rows:   height,
		Cols:   width,
		Dim:    width,
	}
	face, ok := Best(d.clusterDetection(img), minQuality)
	if !ok {
		return 0, 0, false
	}
	left, right := d.detectPupil(face, img, -1), d.detectPupil(face, img, 1)
	if left != nil && right != nil {
		return float64(left.Col+right.Col) / 2, float64(left.Row+right.Row) / 2, true
	}
	return float64(face.Col), float64(face.Row), true
}

// detectPupil searches the pupil on the given side (-1 left, 1 right) of a face.
func (d *Detector) detectPupil(face pigo.Detection, img pigo.ImageParams, side int) *pigo.Puploc {
	puploc := &pigo.Puploc{
		Row:      face.Row - int(0.085*float32(face.Scale)),
		Col:      face.Col + side*int(0.185*float32(face.Scale)),
		Scale:    float32(face.Scale) * 0.4,
		Perturbs: perturbFact,
	}
	eye := d.puplocClassifier.RunDetector(*puploc, img, 0.0, false)
	if eye.Row > 0 && eye.Col > 0 {
		return eye
	}
	return nil
}

// clusterDetection runs Pigo face detector core methods
// and returns a cluster with the detected faces coordinates.
func (d *Detector) clusterDetection(img pigo.ImageParams) []pigo.Detection {
	cParams := pigo.CascadeParams{
		MinSize:     100,
		MaxSize:     1200,
		ShiftFactor: 0.1,
		ScaleFactor: 1.1,
		ImageParams: img,
	}

	// Run the classifier over the obtained leaf nodes and return the detection results.
	// The result contains quadruplets representing the row, column, scale and detection score.
	dets := d.faceClassifier.RunCascade(cParams, 0.0)

	// Calculate the intersection over union (IoU) of two clusters.
	return d.faceClassifier.ClusterDetections(dets, 0.1)
}

// Best returns the highest scoring detection above minQ.
func Best(dets []pigo.Detection, minQ float32) (pigo.Detection, bool) {
	var (
		best pigo.Detection
		ok   bool
	)
	for _, det := range dets {
		if det.Q < minQ {
			continue
		}
		if !ok || det.Q > best.Q {
			best, ok = det, true
		}
	}
	return best, ok
}

// Grayscale converts an RGBA pixel array into the luminance plane pigo expects.
func Grayscale(rgba []uint8, width, height int) []uint8 {
	gray := make([]uint8, width*height)
	for i := range gray {
		j := i * 4
		if j+2 >= len(rgba) {
			break
		}
		r, g, b := float64(rgba[j]), float64(rgba[j+1]), float64(rgba[j+2])
		gray[i] = uint8(0.299*r + 0.587*g + 0.114*b)
	}
	return gray
}

// ToViewport maps a point of a mirrored webcam frame onto the viewport.
func ToViewport(x, y float64, frameW, frameH int, viewW, viewH float64) (float64, float64) {
	if frameW <= 0 || frameH <= 0 {
		return 0, 0
	}
	return (1 - x/float64(frameW)) * viewW, y / float64(frameH) * viewH
}
