package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/carbocation/bestgeno"
	"github.com/carbocation/pfx"
	"gonum.org/v1/gonum/mat"
)

func main() {
	probsFlag := flag.String("probs", "0.1,0.1,0.8", "Comma-separated probabilities, copy number fastest, then taxon, then allele. Use NA for missing")
	ploidy := flag.Int("ploidy", 2, "Ploidy")
	ntaxa := flag.Int("ntaxa", 1, "Number of taxa")
	nalleles := flag.Int("nalleles", 1, "Number of alleles")
	chisqFlag := flag.String("chisq", "NA,3.2,1.1", "Comma-separated fit statistics for one allele, one per ploidy hypothesis. Use NA for missing")
	flag.Parse()

	probs, err := parseFloats(*probsFlag)
	if err != nil {
		log.Fatalln(err)
	}

	pa, err := bestgeno.NewProbArray(probs, *ploidy, *ntaxa, *nalleles)
	if err != nil {
		log.Fatalln(err)
	}

	genos := pa.BestGenos()
	log.Printf("Best genotypes (taxon rows, allele columns):\n%s\n", genos)

	for taxon, mg := range pa.BestMultiGenos() {
		if !mg.Resolved() {
			log.Printf("Taxon %d: no multiallelic genotype has positive probability\n", taxon)
			continue
		}
		log.Printf("Taxon %d: multiallelic genotype %v with probability %g\n", taxon, mg.Copies, mg.Prob)
	}

	if *chisqFlag == "" {
		return
	}

	chisq, err := parseFloats(*chisqFlag)
	if err != nil {
		log.Fatalln(err)
	}
	picks := bestgeno.BestPloidies(mat.NewDense(len(chisq), 1, chisq))
	for allele, pick := range picks {
		if pick.Missing {
			log.Printf("Allele %d: every ploidy statistic is missing\n", allele)
			continue
		}
		log.Printf("Allele %d: best ploidy hypothesis is #%d\n", allele, pick.Index)
	}
}

func parseFloats(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	out := make([]float64, 0, len(fields))
	for _, field := range fields {
		field = strings.TrimSpace(field)
		if strings.EqualFold(field, "NA") {
			out = append(out, bestgeno.Missing())
			continue
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, pfx.Err(fmt.Errorf("%q is not a number: %w", field, err))
		}
		out = append(out, v)
	}

	return out, nil
}
