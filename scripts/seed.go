// Seed script for local development. Populates the document store with
// sample Korean documents and indexes them so every search mode has data.
//
// Usage:
//
//	go run scripts/seed.go
//	go run scripts/seed.go --database-url hangulsearch.db
//	go run scripts/seed.go --clear  (wipe documents and postings first)
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/jusunglee/hangulsearch/internal/db"
	"github.com/jusunglee/hangulsearch/internal/db/sqlite"
	"github.com/jusunglee/hangulsearch/internal/index"
	"github.com/jusunglee/hangulsearch/internal/logger"
)

type sample struct {
	Title string
	Body  string
}

var samples = []sample{
	{"오픈서치 한글 분석기", "자모 분해와 초성 추출을 지원하는 한글 분석 플러그인"},
	{"한국 여행 가이드", "서울, 부산, 제주도의 명소와 맛집 정리"},
	{"안녕하세요 인사법", "격식체와 비격식체 인사 표현 모음"},
	{"키보드 오타 교정", "영문 자판으로 입력한 한글 복원하기: dkssudgktpdy"},
	{"값지다의 어원", "겹받침 ㅄ이 들어간 단어들"},
	{"따뜻한 겨울나기", "온돌과 보일러, 한국의 난방 문화"},
	{"무한도전 다시보기", "한국 예능의 전설"},
	{"검색 엔진의 역사", "역색인, 형태소 분석, 그리고 한글 검색의 어려움"},
	{"새벽이슬", ""},
	{"푸른하늘 은하수", "반달 동요 가사"},
}

func main() {
	databaseURL := flag.String("database-url", "hangulsearch.db", "SQLite file path")
	clear := flag.Bool("clear", false, "wipe documents and postings before seeding")
	flag.Parse()

	ctx := context.Background()

	repo, err := sqlite.New(ctx, *databaseURL)
	if err != nil {
		log.Fatalf("opening database: %v", err)
	}
	defer repo.Close()

	if *clear {
		docs, err := repo.ListDocuments(ctx, db.ListDocumentsParams{Limit: 1000})
		if err != nil {
			log.Fatalf("listing documents: %v", err)
		}
		for _, doc := range docs {
			if _, err := repo.DeleteDocument(ctx, doc.ID); err != nil {
				log.Fatalf("deleting document %d: %v", doc.ID, err)
			}
		}
		fmt.Printf("cleared %d documents\n", len(docs))
	}

	ix := index.New(repo, logger.Get())

	for _, s := range samples {
		doc, err := repo.CreateDocument(ctx, db.CreateDocumentParams{Title: s.Title, Body: s.Body})
		if err != nil {
			log.Fatalf("creating document %q: %v", s.Title, err)
		}
		if err := ix.Index(ctx, doc); err != nil {
			log.Fatalf("indexing document %q: %v", s.Title, err)
		}
	}

	fmt.Printf("seeded %d documents\n", len(samples))
}
