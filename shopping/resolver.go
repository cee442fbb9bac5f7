package shopping

// Partition holds one lookup table per entity type. In a multi-airline
// document each airline gets its own partition keyed by the full
// (prefixed) entity key; unprefixed keys land in the global partition.
type Partition struct {
	Travelers          map[string]Traveler
	Segments           map[string]FlightSegment
	Flights            map[string]Flight
	OriginDestinations map[string]OriginDestination
	Baggage            map[string]CheckedBagAllowance
	Services           map[string]ServiceDefinition
	Penalties          map[string]Penalty
}

func newPartition() *Partition {
	return &Partition{
		Travelers:          map[string]Traveler{},
		Segments:           map[string]FlightSegment{},
		Flights:            map[string]Flight{},
		OriginDestinations: map[string]OriginDestination{},
		Baggage:            map[string]CheckedBagAllowance{},
		Services:           map[string]ServiceDefinition{},
		Penalties:          map[string]Penalty{},
	}
}

// ReferenceSet is the namespace-aware lookup over one raw document.
type ReferenceSet struct {
	Detection Detection
	Global    *Partition
	ByAirline map[string]*Partition

	// ShoppingResponseIDs maps an airline code to the transaction id the
	// vendor requires on every follow-up call about that airline's offers.
	// The document-level id is stored under the empty key as fallback.
	ShoppingResponseIDs map[string]string
}

// BuildReferenceSet partitions every entity list of the document by
// airline prefix. fallback is the document-level shopping response id.
func BuildReferenceSet(dataLists DataLists, metadata *Metadata, fallback ShoppingResponseID, detection Detection) *ReferenceSet {
	refs := &ReferenceSet{
		Detection:           detection,
		Global:              newPartition(),
		ByAirline:           map[string]*Partition{},
		ShoppingResponseIDs: map[string]string{},
	}

	for _, traveler := range dataLists.AnonymousTravelerList {
		refs.partitionFor(traveler.ObjectKey).Travelers[traveler.ObjectKey] = traveler
	}
	for _, segment := range dataLists.FlightSegmentList {
		refs.partitionFor(segment.SegmentKey).Segments[segment.SegmentKey] = segment
	}
	for _, flight := range dataLists.FlightList {
		refs.partitionFor(flight.FlightKey).Flights[flight.FlightKey] = flight
	}
	for _, od := range dataLists.OriginDestinationList {
		refs.partitionFor(od.OriginDestinationKey).OriginDestinations[od.OriginDestinationKey] = od
	}
	for _, bag := range dataLists.CheckedBagAllowanceList {
		refs.partitionFor(bag.ListKey).Baggage[bag.ListKey] = bag
	}
	for _, service := range dataLists.ServiceDefinitionList {
		refs.partitionFor(service.ServiceDefinitionID).Services[service.ServiceDefinitionID] = service
	}
	for _, penalty := range dataLists.PenaltyList {
		refs.partitionFor(penalty.ObjectKey).Penalties[penalty.ObjectKey] = penalty
	}

	if metadata != nil {
		for _, entry := range metadata.Other.ShoppingResponseIDs {
			if entry.ResponseID != "" {
				refs.ShoppingResponseIDs[entry.Owner] = entry.ResponseID
			}
		}
	}
	if fallback.ResponseID != "" {
		if fallback.Owner != "" {
			if _, ok := refs.ShoppingResponseIDs[fallback.Owner]; !ok {
				refs.ShoppingResponseIDs[fallback.Owner] = fallback.ResponseID
			}
		}
		refs.ShoppingResponseIDs[""] = fallback.ResponseID
	}

	return refs
}

// References builds the reference set for a shopping response.
func (rs *AirShoppingRS) References(detection Detection) *ReferenceSet {
	return BuildReferenceSet(rs.DataLists, rs.Metadata, rs.ShoppingResponseID, detection)
}

// References builds the reference set for a pricing response.
func (rs *FlightPriceRS) References(detection Detection) *ReferenceSet {
	return BuildReferenceSet(rs.DataLists, rs.Metadata, rs.ShoppingResponseID, detection)
}

func (r *ReferenceSet) partitionFor(key string) *Partition {
	tagged := SplitKey(key)
	if tagged.Airline == "" {
		return r.Global
	}
	partition, ok := r.ByAirline[tagged.Airline]
	if !ok {
		partition = newPartition()
		r.ByAirline[tagged.Airline] = partition
	}
	return partition
}

// Airline returns the (possibly empty) partition for one airline code.
func (r *ReferenceSet) Airline(code string) *Partition {
	if partition, ok := r.ByAirline[code]; ok {
		return partition
	}
	return newPartition()
}

// ShoppingResponseIDFor resolves the transaction id for an airline,
// falling back to the document-level id.
func (r *ReferenceSet) ShoppingResponseIDFor(airline string) (string, bool) {
	if id, ok := r.ShoppingResponseIDs[airline]; ok {
		return id, true
	}
	if id, ok := r.ShoppingResponseIDs[""]; ok {
		return id, true
	}
	return "", false
}

// Resolution order for every entity type: the named airline's partition
// (under the key as given, then under the prefixed form), the global
// partition, then a scan across all partitions as a last resort. The scan
// is never needed for a well-formed document.

func (r *ReferenceSet) ResolveTraveler(key, airline string) (Traveler, bool) {
	if partition, ok := r.ByAirline[airline]; ok {
		if v, ok := partition.Travelers[key]; ok {
			return v, true
		}
		if v, ok := partition.Travelers[airline+"-"+key]; ok {
			return v, true
		}
	}
	if v, ok := r.Global.Travelers[key]; ok {
		return v, true
	}
	for _, partition := range r.ByAirline {
		if v, ok := partition.Travelers[key]; ok {
			return v, true
		}
	}
	return Traveler{}, false
}

func (r *ReferenceSet) ResolveSegment(key, airline string) (FlightSegment, bool) {
	if partition, ok := r.ByAirline[airline]; ok {
		if v, ok := partition.Segments[key]; ok {
			return v, true
		}
		if v, ok := partition.Segments[airline+"-"+key]; ok {
			return v, true
		}
	}
	if v, ok := r.Global.Segments[key]; ok {
		return v, true
	}
	for _, partition := range r.ByAirline {
		if v, ok := partition.Segments[key]; ok {
			return v, true
		}
	}
	return FlightSegment{}, false
}

func (r *ReferenceSet) ResolveFlight(key, airline string) (Flight, bool) {
	if partition, ok := r.ByAirline[airline]; ok {
		if v, ok := partition.Flights[key]; ok {
			return v, true
		}
		if v, ok := partition.Flights[airline+"-"+key]; ok {
			return v, true
		}
	}
	if v, ok := r.Global.Flights[key]; ok {
		return v, true
	}
	for _, partition := range r.ByAirline {
		if v, ok := partition.Flights[key]; ok {
			return v, true
		}
	}
	return Flight{}, false
}

func (r *ReferenceSet) ResolveOriginDestination(key, airline string) (OriginDestination, bool) {
	if partition, ok := r.ByAirline[airline]; ok {
		if v, ok := partition.OriginDestinations[key]; ok {
			return v, true
		}
		if v, ok := partition.OriginDestinations[airline+"-"+key]; ok {
			return v, true
		}
	}
	if v, ok := r.Global.OriginDestinations[key]; ok {
		return v, true
	}
	for _, partition := range r.ByAirline {
		if v, ok := partition.OriginDestinations[key]; ok {
			return v, true
		}
	}
	return OriginDestination{}, false
}

func (r *ReferenceSet) ResolveBaggage(key, airline string) (CheckedBagAllowance, bool) {
	if partition, ok := r.ByAirline[airline]; ok {
		if v, ok := partition.Baggage[key]; ok {
			return v, true
		}
		if v, ok := partition.Baggage[airline+"-"+key]; ok {
			return v, true
		}
	}
	if v, ok := r.Global.Baggage[key]; ok {
		return v, true
	}
	for _, partition := range r.ByAirline {
		if v, ok := partition.Baggage[key]; ok {
			return v, true
		}
	}
	return CheckedBagAllowance{}, false
}

func (r *ReferenceSet) ResolveService(key, airline string) (ServiceDefinition, bool) {
	if partition, ok := r.ByAirline[airline]; ok {
		if v, ok := partition.Services[key]; ok {
			return v, true
		}
		if v, ok := partition.Services[airline+"-"+key]; ok {
			return v, true
		}
	}
	if v, ok := r.Global.Services[key]; ok {
		return v, true
	}
	for _, partition := range r.ByAirline {
		if v, ok := partition.Services[key]; ok {
			return v, true
		}
	}
	return ServiceDefinition{}, false
}

func (r *ReferenceSet) ResolvePenalty(key, airline string) (Penalty, bool) {
	if partition, ok := r.ByAirline[airline]; ok {
		if v, ok := partition.Penalties[key]; ok {
			return v, true
		}
		if v, ok := partition.Penalties[airline+"-"+key]; ok {
			return v, true
		}
	}
	if v, ok := r.Global.Penalties[key]; ok {
		return v, true
	}
	for _, partition := range r.ByAirline {
		if v, ok := partition.Penalties[key]; ok {
			return v, true
		}
	}
	return Penalty{}, false
}
