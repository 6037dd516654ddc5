package layout

// 画布按 1px = 1mm 建模，栅格化时使用 1 dot/mm，这样布局坐标可以直接当像素用。
// 字体系统以 pt 计字号，这里集中做 px(=mm) ↔ pt 换算。

// Conversion constants between pt and mm.
const (
	PtToMm = 0.352777
	MmToPt = 1.0 / PtToMm
)

// RasterDPMM 是栅格化分辨率（dots per mm），与上面的 1px = 1mm 约定一致。
const RasterDPMM = 1.0

// PxToPt 将像素字号（即 em 高度）换算为字体系统使用的 pt。
func PxToPt(px float64) float64 { return px / RasterDPMM * MmToPt }

// PtToPx 将 pt 换算回像素。
func PtToPx(pt float64) float64 { return pt * PtToMm * RasterDPMM }
