package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/toodle-app/toodle"
	"github.com/toodle-app/toodle/boundary"
)

// heapSample captures the allocator state at one point in the run.
type heapSample struct {
	live  uint64 // bytes still reachable
	total uint64 // cumulative bytes ever allocated
	sys   uint64 // bytes taken from the OS
	gcs   uint32 // completed GC cycles
}

// sampleHeap collects before reading, so live reflects reachable memory
// rather than pending garbage.
func sampleHeap() heapSample {
	runtime.GC()
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return heapSample{live: m.Alloc, total: m.TotalAlloc, sys: m.Sys, gcs: m.NumGC}
}

func (s heapSample) String() string {
	return fmt.Sprintf("live %6d KB, total %6d KB, sys %6d KB, gc %d",
		s.live/1024, s.total/1024, s.sys/1024, s.gcs)
}

// churn runs one full handle lifecycle: create an item, mutate every field,
// export and walk its labels, then release everything in reverse order.
func churn(i int) error {
	h := boundary.NewItem()

	if err := boundary.SetItemName(h, fmt.Sprintf("item %d", i)); err != nil {
		return fmt.Errorf("set name: %w", err)
	}
	if err := boundary.SetItemDueDate(h, int64(1700000000+i)); err != nil {
		return fmt.Errorf("set due date: %w", err)
	}
	if err := boundary.SetItemCompletionDate(h, int64(1700000000+i)); err != nil {
		return fmt.Errorf("set completion date: %w", err)
	}
	if err := boundary.ClearItemCompletionDate(h); err != nil {
		return fmt.Errorf("clear completion date: %w", err)
	}

	list, err := boundary.ItemLabels(h)
	if err != nil {
		return fmt.Errorf("export labels: %w", err)
	}
	n, err := boundary.LabelsCount(list)
	if err != nil {
		return fmt.Errorf("count labels: %w", err)
	}
	for j := 0; j < n; j++ {
		lh, err := boundary.LabelAt(list, j)
		if err != nil {
			return fmt.Errorf("label at %d: %w", j, err)
		}
		boundary.DestroyLabel(lh)
	}

	boundary.DestroyLabels(list)
	boundary.DestroyItem(h)
	return nil
}

func main() {
	const iterations = 100000
	const reportInterval = 10000

	// The native-side ListManager churns too, so item and label allocation
	// paths outside the boundary get exercised by the same run.
	mgr := toodle.NewListManager()
	urgent := mgr.DefineLabel("urgent", "#FF5F5F")

	start := sampleHeap()
	fmt.Println("Start:", start)

	for i := 0; i < iterations; i++ {
		if err := churn(i); err != nil {
			fmt.Fprintf(os.Stderr, "churn error at iteration %d: %v\n", i, err)
			os.Exit(1)
		}

		it := mgr.CreateItem()
		mgr.AttachLabel(it, urgent)
		mgr.RemoveItem(it.UUID)

		if (i+1)%reportInterval == 0 {
			fmt.Printf("Iter %6d: %s\n", i+1, sampleHeap())
		}
	}

	items, lists, labels := boundary.Live()
	fmt.Printf("Live handles after run: items=%d labelLists=%d labels=%d\n", items, lists, labels)
	if items != 0 || lists != 0 || labels != 0 {
		fmt.Fprintln(os.Stderr, "FAIL: handle leak detected")
		os.Exit(1)
	}

	end := sampleHeap()
	fmt.Println("End:  ", end)
	fmt.Printf("Growth: %d KB\n", (int64(end.live)-int64(start.live))/1024)
}
