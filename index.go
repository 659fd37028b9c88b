package bestgeno

// All offset arithmetic into the flat probability arrays lives here. The copy
// number axis always varies fastest.

// genoIndex is the offset of (copyNum, taxon, allele) in a 3D probability
// array holding ngen = ploidy+1 copy numbers for each of ntaxa taxa.
func genoIndex(ngen, ntaxa, copyNum, taxon, allele int) int {
	return (allele*ntaxa+taxon)*ngen + copyNum
}

// splitGenoIndex is the inverse of genoIndex.
func splitGenoIndex(i, ngen, ntaxa int) (copyNum, taxon, allele int) {
	copyNum = i % ngen
	taxon = i / ngen % ntaxa
	allele = i / (ngen * ntaxa)

	return copyNum, taxon, allele
}

// locusIndex is the offset of (copyNum, allele) in a 2D per-locus array, which
// is column-major with copy number as the row.
func locusIndex(ngen, copyNum, allele int) int {
	return allele*ngen + copyNum
}
