package repository_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/armandopadilla/lasttimei-lamdbda/internal/adapters/repository"
	"github.com/armandopadilla/lasttimei-lamdbda/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMemoryStore_Insert(t *testing.T) {
	Convey("Given an empty memory store", t, func() {
		ctx := context.Background()
		store := repository.NewMemoryStore()
		rec := model.NewActionRecord("id-1", "G030MD027383CRCB", "ACTION_WASHED_KIDS_BED_SHEETS", time.Now())

		Convey("When inserting a record", func() {
			err := store.Insert(ctx, rec)

			Convey("Then it can be read back", func() {
				So(err, ShouldBeNil)
				So(store.Count(), ShouldEqual, 1)
				got, err := store.Get(ctx, "id-1")
				So(err, ShouldBeNil)
				So(got, ShouldResemble, rec)
			})

			Convey("And inserting the same id again fails", func() {
				err := store.Insert(ctx, rec)
				So(errors.Is(err, repository.ErrDuplicateID), ShouldBeTrue)
				So(store.Count(), ShouldEqual, 1)
			})
		})

		Convey("When inserting a record without id", func() {
			err := store.Insert(ctx, model.ActionRecord{SerialNumber: "X", Action: "Y"})

			Convey("Then it is rejected", func() {
				So(errors.Is(err, repository.ErrInvalidRecord), ShouldBeTrue)
				So(store.Count(), ShouldEqual, 0)
			})
		})

		Convey("When the context is already cancelled", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()
			err := store.Insert(cctx, rec)

			Convey("Then nothing is written", func() {
				So(errors.Is(err, repository.ErrInsertFailed), ShouldBeTrue)
				So(errors.Is(err, context.Canceled), ShouldBeTrue)
				So(store.Count(), ShouldEqual, 0)
			})
		})

		Convey("When fetching an unknown id", func() {
			_, err := store.Get(ctx, "missing")

			Convey("Then ErrNotFound is returned", func() {
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
			})
		})
	})

	Convey("Given a memory store configured to fail", t, func() {
		store := repository.NewMemoryStore(repository.WithFailure(errors.New("connection reset by peer")))

		Convey("When inserting", func() {
			err := store.Insert(context.Background(), model.ActionRecord{ID: "id-1"})

			Convey("Then the injected failure is surfaced and nothing is stored", func() {
				So(errors.Is(err, repository.ErrInsertFailed), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "connection reset by peer")
				So(store.Count(), ShouldEqual, 0)
			})
		})
	})
}

func TestMemoryStore_Concurrent(t *testing.T) {
	Convey("Given concurrent inserters", t, func() {
		store := repository.NewMemoryStore()
		var wg sync.WaitGroup

		for i := 0; i < 64; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_ = store.Insert(context.Background(), model.ActionRecord{
					ID:        fmt.Sprintf("id-%02d", i),
					TimeStamp: int64(i),
				})
			}(i)
		}
		wg.Wait()

		Convey("Then every record is kept and List is ordered", func() {
			So(store.Count(), ShouldEqual, 64)
			list := store.List()
			So(list[0].ID, ShouldEqual, "id-00")
			So(list[63].ID, ShouldEqual, "id-63")
		})
	})
}
