package agenda

import (
	"hash/fnv"
	"sort"

	"fitgarden/models"
)

// zonePalette backs the colored strip next to each list row. A zone
// keeps the same color across sessions because assignment hashes the
// zone name.
var zonePalette = []string{
	"#2e7d32", // green
	"#1565c0", // blue
	"#ef6c00", // orange
	"#6a1b9a", // purple
	"#c62828", // red
	"#00838f", // teal
	"#9e9d24", // olive
	"#4e342e", // brown
}

// ZoneColor returns the strip color for a delivery zone. Unzoned rows
// get a neutral gray.
func ZoneColor(regiao string) string {
	if regiao == "" {
		return "#9e9e9e"
	}
	h := fnv.New32a()
	h.Write([]byte(regiao))
	return zonePalette[h.Sum32()%uint32(len(zonePalette))]
}

type tallyKey struct {
	opcao   string
	tamanho string
}

// ProductionTally reduces the day's bookings to item+size totals for
// the kitchen. Rows are sorted by option then size for stable output.
func ProductionTally(views []models.AgendamentoView) []models.ProducaoItem {
	totals := make(map[tallyKey]int)
	for _, view := range views {
		for _, it := range view.Itens {
			totals[tallyKey{it.OpcaoNome, it.TamanhoRotulo}] += it.Quantidade
		}
	}
	return sortedTally(totals)
}

// RouteTally buckets the same reduction per delivery zone, counting
// only ENTREGA bookings.
func RouteTally(views []models.AgendamentoView) []models.RotaRegiao {
	type bucket struct {
		count  int
		totals map[tallyKey]int
	}
	buckets := make(map[string]*bucket)

	for _, view := range views {
		if view.Tipo != models.TipoEntregaDomicilio {
			continue
		}
		b, ok := buckets[view.Regiao]
		if !ok {
			b = &bucket{totals: make(map[tallyKey]int)}
			buckets[view.Regiao] = b
		}
		b.count++
		for _, it := range view.Itens {
			b.totals[tallyKey{it.OpcaoNome, it.TamanhoRotulo}] += it.Quantidade
		}
	}

	regioes := make([]string, 0, len(buckets))
	for regiao := range buckets {
		regioes = append(regioes, regiao)
	}
	sort.Strings(regioes)

	out := make([]models.RotaRegiao, 0, len(regioes))
	for _, regiao := range regioes {
		b := buckets[regiao]
		out = append(out, models.RotaRegiao{
			Regiao:       regiao,
			Cor:          ZoneColor(regiao),
			Agendamentos: b.count,
			Itens:        sortedTally(b.totals),
		})
	}
	return out
}

func sortedTally(totals map[tallyKey]int) []models.ProducaoItem {
	itens := make([]models.ProducaoItem, 0, len(totals))
	for key, quantidade := range totals {
		itens = append(itens, models.ProducaoItem{
			OpcaoNome:     key.opcao,
			TamanhoRotulo: key.tamanho,
			Quantidade:    quantidade,
		})
	}
	sort.Slice(itens, func(i, j int) bool {
		if itens[i].OpcaoNome != itens[j].OpcaoNome {
			return itens[i].OpcaoNome < itens[j].OpcaoNome
		}
		return itens[i].TamanhoRotulo < itens[j].TamanhoRotulo
	})
	return itens
}
