// Carga de dados fictícios para desenvolvimento local. Gera escritórios,
// corretores, vendedores, compradores e imóveis, e registra as vendas pelo
// mesmo caso de uso da API para manter as transições de estado consistentes.
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hussenmi/real-estate-api/infrastructure/database/postgres"
	"github.com/hussenmi/real-estate-api/infrastructure/repository"
	"github.com/hussenmi/real-estate-api/internal/config"
	"github.com/hussenmi/real-estate-api/internal/domain"
	"github.com/hussenmi/real-estate-api/internal/usecases/selling"
)

const (
	numOfOffices = 7
	numOfAgents  = 20
	numOfSellers = 70
	numOfBuyers  = 200
	numOfHouses  = 100
	// Cerca de 80% dos imóveis são vendidos
	numOfSales = numOfHouses * 8 / 10
)

// Primeiro dia considerado para anúncios e vendas
var listingEpoch = time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)

var firstNames = []string{
	"Ana", "Bruno", "Camila", "Diego", "Elisa", "Felipe", "Gabriela", "Hugo",
	"Isabela", "João", "Karina", "Lucas", "Mariana", "Nicolas", "Olívia",
	"Pedro", "Rafaela", "Sérgio", "Tatiana", "Vinícius",
}

var lastNames = []string{
	"Almeida", "Barbosa", "Cardoso", "Dias", "Fernandes", "Gomes", "Lima",
	"Martins", "Nascimento", "Oliveira", "Pereira", "Ribeiro", "Santos",
	"Silva", "Souza", "Teixeira",
}

var streets = []string{
	"Rua das Flores", "Avenida Atlântica", "Rua XV de Novembro",
	"Avenida Paulista", "Rua da Praia", "Alameda Santos", "Rua do Comércio",
}

func randomPhone(rng *rand.Rand) string {
	return fmt.Sprintf("%03d-%03d-%04d", rng.Intn(1000), rng.Intn(1000), rng.Intn(10000))
}

func randomPerson(rng *rand.Rand) (string, string) {
	first := firstNames[rng.Intn(len(firstNames))]
	last := lastNames[rng.Intn(len(lastNames))]
	name := fmt.Sprintf("%s %s", first, last)
	email := fmt.Sprintf("%s.%s%d@email.com", lower(first), lower(last), rng.Intn(10000))
	return name, email
}

func lower(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		// Remove acentos dos e-mails gerados
		switch r {
		case 'á', 'â', 'ã':
			r = 'a'
		case 'é', 'ê':
			r = 'e'
		case 'í':
			r = 'i'
		case 'ó', 'ô':
			r = 'o'
		case 'ú':
			r = 'u'
		case 'ç':
			r = 'c'
		}
		out = append(out, r)
	}
	return string(out)
}

// randomDate retorna uma data aleatória entre start e hoje
func randomDate(rng *rand.Rand, start time.Time) time.Time {
	days := int(time.Since(start).Hours() / 24)
	if days <= 0 {
		return start
	}
	return start.AddDate(0, 0, rng.Intn(days+1))
}

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Iniciando carga de dados fictícios...")

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	ctx := context.Background()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer conn.Close()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	officeRepo := repository.NewOfficeRepository(conn)
	agentRepo := repository.NewAgentRepository(conn)
	sellerRepo := repository.NewSellerRepository(conn)
	buyerRepo := repository.NewBuyerRepository(conn)
	houseRepo := repository.NewHouseRepository(conn)
	saleRepo := repository.NewSaleRepository(conn)

	sellingService := selling.NewService(conn, houseRepo, saleRepo)

	// Escritórios
	officeIDs := make([]int, 0, numOfOffices)
	for i := 0; i < numOfOffices; i++ {
		street := streets[rng.Intn(len(streets))]
		address := fmt.Sprintf("%s, %d", street, rng.Intn(2000)+1)
		id, err := officeRepo.Create(ctx, &domain.Office{
			Phone:   randomPhone(rng),
			Email:   fmt.Sprintf("escritorio%d@company.com", i+1),
			Address: address,
		})
		if err != nil {
			log.Fatalf("ERRO ao inserir escritório: %v", err)
		}
		officeIDs = append(officeIDs, id)
	}
	log.Printf("Inseridos %d escritórios", len(officeIDs))

	// Corretores
	agentIDs := make([]int, 0, numOfAgents)
	for i := 0; i < numOfAgents; i++ {
		name, email := randomPerson(rng)
		id, err := agentRepo.Create(ctx, &domain.Agent{
			Name:  name,
			Phone: randomPhone(rng),
			Email: email,
		})
		if err != nil {
			log.Fatalf("ERRO ao inserir corretor: %v", err)
		}
		agentIDs = append(agentIDs, id)
	}
	log.Printf("Inseridos %d corretores", len(agentIDs))

	// Vínculos corretor-escritório, sorteados por moeda
	links := 0
	for _, agentID := range agentIDs {
		for _, officeID := range officeIDs {
			if rng.Intn(2) == 0 {
				continue
			}
			if err := agentRepo.AddToOffice(ctx, agentID, officeID); err != nil {
				log.Fatalf("ERRO ao vincular corretor ao escritório: %v", err)
			}
			links++
		}
	}
	log.Printf("Criados %d vínculos corretor-escritório", links)

	// Vendedores
	sellerIDs := make([]int, 0, numOfSellers)
	for i := 0; i < numOfSellers; i++ {
		name, email := randomPerson(rng)
		id, err := sellerRepo.Create(ctx, &domain.Seller{
			Name:  name,
			Phone: randomPhone(rng),
			Email: email,
		})
		if err != nil {
			log.Fatalf("ERRO ao inserir vendedor: %v", err)
		}
		sellerIDs = append(sellerIDs, id)
	}
	log.Printf("Inseridos %d vendedores", len(sellerIDs))

	// Compradores
	buyerIDs := make([]int, 0, numOfBuyers)
	for i := 0; i < numOfBuyers; i++ {
		name, email := randomPerson(rng)
		id, err := buyerRepo.Create(ctx, &domain.Buyer{
			Name:  name,
			Phone: randomPhone(rng),
			Email: email,
		})
		if err != nil {
			log.Fatalf("ERRO ao inserir comprador: %v", err)
		}
		buyerIDs = append(buyerIDs, id)
	}
	log.Printf("Inseridos %d compradores", len(buyerIDs))

	// Imóveis, todos anunciados com corretor e escritório
	type listing struct {
		id            int
		listingPrice  decimal.Decimal
		dateOfListing time.Time
	}
	listings := make([]listing, 0, numOfHouses)
	for i := 0; i < numOfHouses; i++ {
		agentID := agentIDs[rng.Intn(len(agentIDs))]
		officeID := officeIDs[rng.Intn(len(officeIDs))]
		price := decimal.NewFromInt(int64(rng.Intn(2000000-30000+1) + 30000))
		dateOfListing := randomDate(rng, listingEpoch)

		id, err := houseRepo.Create(ctx, &domain.House{
			NumBedrooms:   rng.Intn(5) + 1,
			NumBathrooms:  rng.Intn(5) + 1,
			ListingPrice:  price,
			ZipCode:       fmt.Sprintf("%05d", rng.Intn(100000)),
			DateOfListing: dateOfListing,
			Status:        domain.HouseStatusNotSold,
			SellerID:      sellerIDs[rng.Intn(len(sellerIDs))],
			AgentID:       &agentID,
			OfficeID:      &officeID,
		})
		if err != nil {
			log.Fatalf("ERRO ao inserir imóvel: %v", err)
		}
		listings = append(listings, listing{id: id, listingPrice: price, dateOfListing: dateOfListing})
	}
	log.Printf("Inseridos %d imóveis", len(listings))

	// Vendas pelo caso de uso, que faz a transição Not Sold -> Sold
	rng.Shuffle(len(listings), func(i, j int) {
		listings[i], listings[j] = listings[j], listings[i]
	})

	sold := 0
	for _, house := range listings[:numOfSales] {
		// Desconto negociado de até 20% sobre o preço anunciado
		discount := decimal.NewFromInt(int64(rng.Intn(21))).Div(decimal.NewFromInt(100))
		salePrice := house.listingPrice.Mul(decimal.NewFromInt(1).Sub(discount))

		_, err := sellingService.RecordSale(ctx, selling.RecordSaleRequest{
			HouseID:    house.id,
			BuyerID:    buyerIDs[rng.Intn(len(buyerIDs))],
			DateOfSale: randomDate(rng, house.dateOfListing),
			SalePrice:  salePrice,
		})
		if err != nil {
			log.Fatalf("ERRO ao registrar venda do imóvel %d: %v", house.id, err)
		}
		sold++
	}
	log.Printf("Registradas %d vendas", sold)

	log.Println("Carga de dados concluída!")
}
