package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"runtime"
	"sync"

	"github.com/carbocation/bestgeno"
	"github.com/carbocation/pfx"
	"gonum.org/v1/gonum/mat"
)

func main() {
	nSites := flag.Int("sites", 10000, "Number of simulated sites")
	ntaxa := flag.Int("taxa", 50, "Number of taxa per site")
	ploidy := flag.Int("ploidy", 4, "Ploidy")
	nalleles := flag.Int("alleles", 3, "Number of alleles per site")
	npld := flag.Int("hypotheses", 3, "Number of ploidy hypotheses per site")
	missingRate := flag.Float64("missing", 0.05, "Fraction of taxa with missing probabilities")
	workers := flag.Int("workers", runtime.NumCPU(), "Number of worker goroutines")
	seed := flag.Int64("seed", 1, "Random seed")
	flag.Parse()

	if *nSites < 1 || *workers < 1 || *npld < 1 {
		flag.PrintDefaults()
		log.Fatalln("sites, workers and hypotheses must be positive")
	}

	// Prep the readers
	sites := make(chan *bestgeno.Site)
	output := make(chan CallCounter)
	confirmDone := make(chan struct{})

	go func() {
		accumulator := CallCounter{}
		for o := range output {
			accumulator.Add(o)
		}
		log.Println("Final accumulated stats")
		log.Printf("%+v\n", accumulator)
		close(confirmDone)
	}()

	// Prep the Workers:
	log.Println("Launching", *workers, "workers")
	var wg sync.WaitGroup
	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			Worker(workerID, sites, output)
		}(i)
	}

	rng := rand.New(rand.NewSource(*seed))
	for i := 0; i < *nSites; i++ {
		if i%1000 == 0 {
			log.Println("Queued", i, "sites")
		}
		site, err := simulateSite(rng, fmt.Sprintf("site%d", i), *ploidy, *ntaxa, *nalleles, *npld, *missingRate)
		if err != nil {
			log.Fatalln(err)
		}
		sites <- site
	}
	close(sites)

	wg.Wait()
	close(output)
	<-confirmDone
}

// CallCounter tallies the calls made at one or more sites.
type CallCounter struct {
	Sites             int
	Calls             int
	MissingCalls      int
	UnresolvedMulti   int
	MissingPloidies   int
	PloidyHypotheses  map[int]int
	AgreeWithMultiGen int
}

func (c *CallCounter) Add(o CallCounter) {
	c.Sites += o.Sites
	c.Calls += o.Calls
	c.MissingCalls += o.MissingCalls
	c.UnresolvedMulti += o.UnresolvedMulti
	c.MissingPloidies += o.MissingPloidies
	c.AgreeWithMultiGen += o.AgreeWithMultiGen
	if c.PloidyHypotheses == nil {
		c.PloidyHypotheses = make(map[int]int)
	}
	for k, v := range o.PloidyHypotheses {
		c.PloidyHypotheses[k] += v
	}
}

// Worker calls every site it receives. The core routines are pure, so workers
// share nothing but the channels.
func Worker(workerID int, sites <-chan *bestgeno.Site, output chan<- CallCounter) {
	for site := range sites {
		calls, err := site.Call()
		if err != nil {
			log.Printf("Worker %d skipped %s: %v\n", workerID, site.ID, err)
			continue
		}

		cc := CallCounter{Sites: 1, PloidyHypotheses: make(map[int]int)}
		for taxon := 0; taxon < calls.Genos.NTaxa; taxon++ {
			row := calls.Genos.Taxon(taxon)
			agree := true
			for allele, call := range row {
				cc.Calls++
				if call.Missing {
					cc.MissingCalls++
					agree = false
					continue
				}
				if calls.MultiGenos[taxon].Copies[allele] != call.CopyNumber {
					agree = false
				}
			}
			if !calls.MultiGenos[taxon].Resolved() {
				cc.UnresolvedMulti++
			}
			if agree {
				cc.AgreeWithMultiGen++
			}
		}
		for _, pick := range calls.Ploidies {
			if pick.Missing {
				cc.MissingPloidies++
				continue
			}
			cc.PloidyHypotheses[pick.Index]++
		}

		output <- cc
	}
}

func simulateSite(rng *rand.Rand, id string, ploidy, ntaxa, nalleles, npld int, missingRate float64) (*bestgeno.Site, error) {
	ngen := ploidy + 1
	probs := make([]float64, 0, ngen*ntaxa*nalleles)
	for a := 0; a < nalleles; a++ {
		for t := 0; t < ntaxa; t++ {
			if rng.Float64() < missingRate {
				for c := 0; c < ngen; c++ {
					probs = append(probs, bestgeno.Missing())
				}
				continue
			}

			group := make([]float64, ngen)
			var total float64
			for c := range group {
				group[c] = rng.ExpFloat64()
				total += group[c]
			}
			for c := range group {
				probs = append(probs, group[c]/total)
			}
		}
	}

	pa, err := bestgeno.NewProbArray(probs, ploidy, ntaxa, nalleles)
	if err != nil {
		return nil, pfx.Err(err)
	}

	chisq := mat.NewDense(npld, nalleles, nil)
	for r := 0; r < npld; r++ {
		for a := 0; a < nalleles; a++ {
			if rng.Float64() < missingRate {
				chisq.Set(r, a, bestgeno.Missing())
				continue
			}
			chisq.Set(r, a, rng.ExpFloat64()*10)
		}
	}

	return &bestgeno.Site{
		ID:    id,
		Probs: pa,
		ChiSq: chisq,
	}, nil
}
