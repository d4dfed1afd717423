package remotedata

import (
	"fmt"
	"reflect"
)

// datum is the type-erased view of a RemoteData, satisfied by every
// instantiation of RemoteData[T].
type datum interface {
	join() join
	anyValue() any
}

func (rd RemoteData[T]) anyValue() any {
	return rd.value
}

// JoinFields joins a record tracked field by field back into a single
// RemoteData[T]. The argument must be a struct (or pointer to struct)
// whose exported fields are all RemoteData values mirroring the fields
// of T by name and element type:
//
//	type User struct {
//		Name string
//		Age  int
//	}
//	type RemoteUser struct {
//		Name RemoteData[string]
//		Age  RemoteData[int]
//	}
//
//	user := JoinFields[User](remoteUser)
//
// Field states combine with the same priority as All, fields taken in
// declaration order. A mismatched shape is a programming error and
// panics.
func JoinFields[T any](fields any) RemoteData[T] {
	fv := reflect.ValueOf(fields)
	for fv.Kind() == reflect.Pointer {
		fv = fv.Elem()
	}
	if fv.Kind() != reflect.Struct {
		panic(fmt.Sprintf("remotedata: JoinFields of non-struct %T", fields))
	}

	ft := fv.Type()
	names := make([]string, 0, ft.NumField())
	data := make([]datum, 0, ft.NumField())
	joins := make([]join, 0, ft.NumField())
	for i := 0; i < ft.NumField(); i++ {
		sf := ft.Field(i)
		if !sf.IsExported() {
			continue
		}
		d, ok := fv.Field(i).Interface().(datum)
		if !ok {
			panic(fmt.Sprintf("remotedata: JoinFields: field %s.%s is not a RemoteData", ft.Name(), sf.Name))
		}
		names = append(names, sf.Name)
		data = append(data, d)
		joins = append(joins, d.join())
	}
	if j := joinAll(joins...); j.state != stateReady {
		return passThrough[T](j)
	}

	var out T
	ov := reflect.ValueOf(&out).Elem()
	if ov.Kind() != reflect.Struct {
		panic(fmt.Sprintf("remotedata: JoinFields into non-struct %T", out))
	}
	for i, name := range names {
		of := ov.FieldByName(name)
		if !of.IsValid() || !of.CanSet() {
			panic(fmt.Sprintf("remotedata: JoinFields: %T has no settable field %s", out, name))
		}
		av := reflect.ValueOf(data[i].anyValue())
		if !av.IsValid() {
			// nil payload, keep the field's zero value
			continue
		}
		if !av.Type().AssignableTo(of.Type()) {
			panic(fmt.Sprintf("remotedata: JoinFields: field %s is %s, want %s", name, av.Type(), of.Type()))
		}
		of.Set(av)
	}
	return Ready(out)
}
