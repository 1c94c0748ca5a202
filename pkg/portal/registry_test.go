package portal

import (
	"testing"
)

func TestNewRegistryHasDefaultHost(t *testing.T) {
	r := NewRegistry()
	if r.Bucket(DefaultHost) == nil {
		t.Fatal("default host missing")
	}
	got := r.Read(DefaultHost)
	if got == nil || len(got) != 0 {
		t.Errorf("Read(default) = %#v, want empty non-nil", got)
	}
	if got := r.Read("nowhere"); got == nil || len(got) != 0 {
		t.Errorf("Read(absent) = %#v, want empty non-nil", got)
	}
	if hosts := r.Hosts(); len(hosts) != 1 || hosts[0] != DefaultHost {
		t.Errorf("Hosts() = %v", hosts)
	}
}

func TestRegistryHostIsolation(t *testing.T) {
	r0 := NewRegistry().Update("a", "x", 1).Update("b", "y", 2)
	r1 := r0.Update("a", "z", 3)

	if r1.Bucket("b") != r0.Bucket("b") {
		t.Error("bucket b should be shared between snapshots")
	}
	if r1.Bucket(DefaultHost) != r0.Bucket(DefaultHost) {
		t.Error("default bucket should be shared between snapshots")
	}
	if r1.Bucket("a") == r0.Bucket("a") {
		t.Error("bucket a should be replaced")
	}
	if got := r0.Read("a"); len(got) != 1 {
		t.Errorf("old snapshot changed: %v", got)
	}
	if got := r1.Read("b"); len(got) != 1 || got[0] != 2 {
		t.Errorf("Read(b) = %v", got)
	}
}

func TestRegistryOverwrite(t *testing.T) {
	r := NewRegistry().
		Update("h", "first", "a").
		Update("h", "second", "b").
		Update("h", "first", "c")

	if got := r.Bucket("h").Names(); len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Errorf("Names() = %v, overwrite should keep position", got)
	}
	if got := r.Read("h"); got[0] != "c" || got[1] != "b" {
		t.Errorf("Read() = %v", got)
	}

	same := r.Update("h", "first", "c")
	if same != r {
		t.Error("writing the stored payload should return the receiver")
	}
	if twice := r.Update("h", "n", 1).Update("h", "n", 1); twice.Read("h")[2] != 1 || len(twice.Read("h")) != 3 {
		t.Errorf("repeated write not idempotent: %v", twice.Read("h"))
	}
}

func TestRegistryRemove(t *testing.T) {
	r := NewRegistry().Update("h", "a", 1).Update("h", "b", 2).Update("h", "c", 3)

	tests := []struct {
		name      string
		host, key string
		unchanged bool
		want      []any
	}{
		{"middle", "h", "b", false, []any{1, 3}},
		{"absent name", "h", "zz", true, []any{1, 2, 3}},
		{"absent host", "nope", "a", true, []any{1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := r.Remove(tt.host, tt.key)
			if (next == r) != tt.unchanged {
				t.Errorf("unchanged = %v, want %v", next == r, tt.unchanged)
			}
			got := next.Read("h")
			if len(got) != len(tt.want) {
				t.Fatalf("Read = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("Read = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestRegistryKeepsEmptyBucketsUntilCompact(t *testing.T) {
	r := NewRegistry().Update("h", "a", 1).Remove("h", "a")
	if b := r.Bucket("h"); b == nil || b.Len() != 0 {
		t.Fatalf("empty bucket should stay, got %v", b)
	}
	if r.EmptyHosts() != 1 {
		t.Errorf("EmptyHosts = %d", r.EmptyHosts())
	}

	c := r.Compact()
	if c.Bucket("h") != nil {
		t.Error("Compact should drop empty host")
	}
	if c.Bucket(DefaultHost) == nil {
		t.Error("Compact dropped the default host")
	}
	if c.Compact() != c {
		t.Error("Compact with nothing to drop should return receiver")
	}
}

func TestRegistryEmptyHostMeansDefault(t *testing.T) {
	r := NewRegistry().Update("", "a", 1)
	if got := r.Read(DefaultHost); len(got) != 1 {
		t.Errorf("Read(default) = %v", got)
	}
}

func TestRegistryEmptyNameIsOrdinary(t *testing.T) {
	r := NewRegistry().Update("h", "", "x").Update("h", "a", "y")
	if got := r.Read("h"); len(got) != 2 || got[0] != "x" || got[1] != "y" {
		t.Fatalf("Read = %v", got)
	}
	if got, ok := r.Bucket("h").Get(""); !ok || got != "x" {
		t.Errorf("Get(\"\") = %v, %v", got, ok)
	}
	r = r.Remove("h", "")
	if got := r.Read("h"); len(got) != 1 || got[0] != "y" {
		t.Errorf("after Remove = %v", got)
	}

	s := NewScope()
	s.Update("main", "", "x")
	if got := s.Read("main"); len(got) != 1 || got[0] != "x" {
		t.Errorf("Scope.Read = %v", got)
	}
}

func TestRegistryVersionAndLen(t *testing.T) {
	r := NewRegistry()
	r2 := r.Update("a", "x", 1).Update("b", "y", 2)
	if r2.Version() != r.Version()+2 {
		t.Errorf("Version = %d", r2.Version())
	}
	if r2.Len() != 2 {
		t.Errorf("Len = %d", r2.Len())
	}
	if hosts := r2.Hosts(); len(hosts) != 3 || hosts[1] != "a" || hosts[2] != "b" {
		t.Errorf("Hosts = %v", hosts)
	}
}
