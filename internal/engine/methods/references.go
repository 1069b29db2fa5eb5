package methods

import (
	"github.com/RMahshie/sada/internal/engine"
	"github.com/RMahshie/sada/pkg/models"
)

var (
	refHalliwellSultan = models.Reference{
		Citation: "Halliwell, R.E. and Sultan, M.A., 1986. Attenuation Of Smoke Detector Alarm Signals In Residential Buildings. Fire Safety Science 1: 689-697. doi:10.3801/IAFSS.FSS.1-689",
		URL:      "https://publications.iafss.org/publications/fss/1/689",
	}
	refBowyerButlerKew = models.Reference{
		Citation: "Bowyer A, Butler H, Kew J (1981) Locating fire alarm sounders for audibility. BSRIA application guide, vol 81. Building Services Research and Information Association, Guildford",
		URL:      "http://scholar.google.com/scholar_lookup?&title=Locating%20fire%20alarm%20sounders%20for%20audibility%20BSRIA%20application%20guide&publication_year=1981&author=Bowyer%2CA&author=Butler%2CH&author=Kew%2CJ",
	}
	refSFPEHandbook = models.Reference{
		Citation: "Schifiliti RP, Custer RLP, Meacham BJ (2016) Design of detection systems. In: Hurley MJ (ed) et al SFPE handbook, 5th edn. Springer, Berlin",
		URL:      "https://doi.org/10.1007/978-1-4939-2565-0_40",
	}
)

// NewEngine returns an engine with the BBK and HS calculators registered, in that order.
func NewEngine() *engine.Engine {
	e := engine.NewEngine()
	e.Register(NewBBKCalculator())
	e.Register(NewHSCalculator())
	return e
}
