package recommend

import "github.com/lueurxax/tastelog/internal/core/domain"

const (
	testRegionFrance = "France"
	testRegionItaly  = "Italy"
	testGrapeCab     = "Cabernet Sauvignon"
	testGrapeMerlot  = "Merlot"
	testSakeJunmai   = domain.SakeTypeJunmai
	testNiigata      = "新潟県"
	testYamagata     = "山形県"
	testBrewery      = "八海山"
	testFloatDelta   = 1e-9
)

func wine(id, region, grape string, vintage, rating int) domain.Wine {
	return domain.Wine{ID: id, Name: "Wine " + id, Region: region, Grape: grape, Vintage: vintage, Rating: rating}
}

func sake(id, brewery string, typ domain.SakeType, region string, rating int) domain.Sake {
	return domain.Sake{ID: id, Name: "Sake " + id, Brewery: brewery, Type: typ, Region: region, Rating: rating}
}

// frenchWines is three French wines rated 5, 4, 4 where the first two share a grape.
func frenchWines() []domain.Wine {
	return []domain.Wine{
		wine("w1", testRegionFrance, testGrapeCab, 0, 5),
		wine("w2", testRegionFrance, testGrapeCab, 0, 4),
		wine("w3", testRegionFrance, testGrapeMerlot, 0, 4),
	}
}
