package main

import (
	"sort"
	"sync"
	"time"

	"github.com/pthm/frcmp/example/components"
)

// Store is an in-memory article store that implements
// components.ArticleStore.
type Store struct {
	mu       sync.RWMutex
	articles []components.Article
}

// NewStore creates a store seeded with sample service updates.
func NewStore() *Store {
	day := 24 * time.Hour
	now := time.Now()
	return &Store{
		articles: []components.Article{
			{
				ID:    "carte-identite",
				Title: "Renouvellement de la carte nationale d'identité",
				Desc:  "La pré-demande en ligne est désormais obligatoire avant tout rendez-vous en mairie.",
				Theme: "Papiers - Citoyenneté",
				Date:  now.Add(-3 * day),
				New:   true,
			},
			{
				ID:    "prime-renovation",
				Title: "Prime à la rénovation énergétique",
				Desc:  "Les plafonds de ressources ont été relevés pour les travaux d'isolation engagés cette année.",
				Theme: "Logement",
				Date:  now.Add(-12 * day),
				New:   true,
			},
			{
				ID:    "declaration-revenus",
				Title: "Déclaration des revenus : calendrier",
				Desc:  "Les dates limites de déclaration en ligne sont publiées, département par département.",
				Theme: "Argent - Impôts",
				Date:  now.Add(-40 * day),
			},
			{
				ID:    "permis-conduire",
				Title: "Permis de conduire dématérialisé",
				Desc:  "Le permis au format numérique est accepté lors des contrôles routiers sur tout le territoire.",
				Theme: "Papiers - Citoyenneté",
				Date:  now.Add(-60 * day),
			},
			{
				ID:    "apl-etudiants",
				Title: "Aides au logement pour les étudiants",
				Desc:  "Le simulateur prend en compte les revenus des douze derniers mois glissants.",
				Theme: "Logement",
				Date:  now.Add(-90 * day),
			},
			{
				ID:    "conge-paternite",
				Title: "Allongement du congé de paternité",
				Desc:  "La durée du congé passe à vingt-huit jours, dont sept obligatoires.",
				Theme: "Famille",
				Date:  now.Add(-120 * day),
			},
		},
	}
}

// List returns the articles matching theme, newest first. An empty
// theme returns everything.
func (s *Store) List(theme string) []components.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]components.Article, 0, len(s.articles))
	for _, a := range s.articles {
		if theme == "" || a.Theme == theme {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

// Themes returns the distinct themes in use, sorted.
func (s *Store) Themes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	var themes []string
	for _, a := range s.articles {
		if _, ok := seen[a.Theme]; ok {
			continue
		}
		seen[a.Theme] = struct{}{}
		themes = append(themes, a.Theme)
	}
	sort.Strings(themes)
	return themes
}
